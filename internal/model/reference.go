package model

// WoodType is immutable reference data for wand woods.
type WoodType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Rarity      string `json:"rarity"`
	Description string `json:"description"`
}

// Core is immutable reference data for wand core materials.
type Core struct {
	ID          int64  `json:"id"`
	Material    string `json:"material"`
	Description string `json:"description"`
	DangerLevel int    `json:"danger_level"`
}
