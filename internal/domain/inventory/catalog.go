package inventory

import (
	"encoding/json"
	"time"

	"github.com/pablohpsilva/Botking-sub000/internal/domain/item"
)

// Asset is a stored media or data artifact referenced by game entities.
type Asset struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	Name      string            `json:"name"`
	URI       string            `json:"uri"`
	Meta      map[string]string `json:"meta,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Template is a reusable blueprint items are stamped from.
type Template struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Rarity      item.Rarity       `json:"rarity"`
	Description string            `json:"description,omitempty"`
	Meta        map[string]string `json:"meta,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Robot is the thin registry row for a physical robot shell, independent of
// any bot currently animating it.
type Robot struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Model     string            `json:"model"`
	Serial    string            `json:"serial"`
	Meta      map[string]string `json:"meta,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func (a Asset) ToJSON() ([]byte, error) { return json.Marshal(a) }

func AssetFromJSON(raw []byte) (Asset, error) {
	var a Asset
	if err := json.Unmarshal(raw, &a); err != nil {
		return Asset{}, err
	}
	return a, nil
}

func (t Template) ToJSON() ([]byte, error) { return json.Marshal(t) }

func TemplateFromJSON(raw []byte) (Template, error) {
	var t Template
	if err := json.Unmarshal(raw, &t); err != nil {
		return Template{}, err
	}
	return t, nil
}

func (r Robot) ToJSON() ([]byte, error) { return json.Marshal(r) }

func RobotFromJSON(raw []byte) (Robot, error) {
	var r Robot
	if err := json.Unmarshal(raw, &r); err != nil {
		return Robot{}, err
	}
	return r, nil
}
