// Package cart implements the pure cart-mutation rules. Every function
// takes the current line list and returns a new one; callers replace
// their state wholesale. Out-of-range quantities are clamped to stock,
// never rejected with an error.
package cart

import "kart-store/internal/model"

// Add returns a new line list with one more unit of product. An existing
// line is incremented and clamped to stock, so adding at stock is a
// quantity no-op. A new line is appended only when the product has
// stock; adding an out-of-stock product is silently ignored. The stored
// product is replaced with the one passed in, keeping stock and price
// current.
func Add(lines []model.CartLine, product model.Product) []model.CartLine {
	for i, line := range lines {
		if line.Product.ID == product.ID {
			updated := clone(lines)
			updated[i].Product = product
			updated[i].Quantity = clamp(line.Quantity+1, product.Stock)
			return updated
		}
	}

	if product.Stock <= 0 {
		return lines
	}

	updated := make([]model.CartLine, len(lines), len(lines)+1)
	copy(updated, lines)
	return append(updated, model.CartLine{Product: product, Quantity: 1})
}

// Remove returns a new line list without the line matching productID.
// Removing an absent product is a no-op.
func Remove(lines []model.CartLine, productID string) []model.CartLine {
	updated := make([]model.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.Product.ID != productID {
			updated = append(updated, line)
		}
	}
	return updated
}

// SetQuantity returns a new line list with the matching line's quantity
// set to newQuantity clamped to the product's stock. A zero or negative
// quantity removes the line; an absent product ID leaves the cart
// unchanged.
func SetQuantity(lines []model.CartLine, productID string, newQuantity int) []model.CartLine {
	if newQuantity <= 0 {
		return Remove(lines, productID)
	}

	updated := clone(lines)
	for i, line := range updated {
		if line.Product.ID == productID {
			updated[i].Quantity = clamp(newQuantity, line.Product.Stock)
		}
	}
	return updated
}

// RemainingStock reports how many more units of product can go into the
// cart. It can be negative when stock shrinks after the line was added;
// callers treat that as a display concern and recompute it on every
// render rather than caching it.
func RemainingStock(product model.Product, lines []model.CartLine) int {
	for _, line := range lines {
		if line.Product.ID == product.ID {
			return product.Stock - line.Quantity
		}
	}
	return product.Stock
}

func clamp(quantity, stock int) int {
	if quantity > stock {
		return stock
	}
	return quantity
}

func clone(lines []model.CartLine) []model.CartLine {
	updated := make([]model.CartLine, len(lines))
	copy(updated, lines)
	return updated
}
