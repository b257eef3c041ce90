package ports

// AssemblyMetrics counts the outcomes of assembly and trading commands.
type AssemblyMetrics interface {
	RecordSuccess(command string)
	RecordRejected(command string)
	RecordConflict()
	RecordFailure()
}
