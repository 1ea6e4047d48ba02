package entity

// Category representa una categoría de productos. Sin ciclo de vida propio.
type Category struct {
	ID   string
	Name string
}
