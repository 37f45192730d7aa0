package http

// Checkout godoc
// @Summary Check out the cart
// @Description Records a completed order for every line of the caller's cart and empties the cart
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{payment_method=string,currency=string} false "Payment options"
// @Success 201 {object} object{success=bool,message=string,data=object{order_id=string,amount=string,status=string,items=array}}
// @Failure 400 {object} object{success=bool,error=string} "Empty cart"
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/checkout [post]
func (h *OrderHandler) CheckoutDoc() {}

// ListOrders godoc
// @Summary List the caller's orders
// @Description Newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/orders [get]
func (h *OrderHandler) ListOrdersDoc() {}

// GetOrder godoc
// @Summary Track an order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders/{orderId} [get]
func (h *OrderHandler) GetOrderDoc() {}
