package dto

import "github.com/aruzhansadakbayeva/Online-Shop-API/models"

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// CartItemView carries the full product detail plus the line subtotal
// computed from the product's current price.
type CartItemView struct {
	ID       uint        `json:"id"`
	Product  ProductView `json:"product"`
	Quantity int         `json:"quantity"`
	Subtotal float64     `json:"subtotal"`
}

type CartView struct {
	Items      []CartItemView `json:"items"`
	TotalPrice float64        `json:"total_price"`
}

func ToCartItemView(item models.CartItem) CartItemView {
	return CartItemView{
		ID:       item.ID,
		Product:  ToProductView(item.Product),
		Quantity: item.Quantity,
		Subtotal: item.Subtotal(),
	}
}

func ToCartView(cart models.Cart) CartView {
	items := make([]CartItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, ToCartItemView(item))
	}
	return CartView{
		Items:      items,
		TotalPrice: cart.TotalPrice(),
	}
}
