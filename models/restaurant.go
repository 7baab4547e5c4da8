package models

// Restaurant is an immutable catalog entry. Stored as JSON under "restaurant:<id>".
type Restaurant struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Cuisine     string  `json:"cuisine" yaml:"cuisine"`
	Rating      float64 `json:"rating" yaml:"rating"`
	WaitTime    int     `json:"waitTime" yaml:"waitTime"`
	PrepTime    int     `json:"prepTime" yaml:"prepTime"`
	Image       string  `json:"image" yaml:"image"`
	Description string  `json:"description" yaml:"description"`
	IsOpen      bool    `json:"isOpen" yaml:"isOpen"`
}
