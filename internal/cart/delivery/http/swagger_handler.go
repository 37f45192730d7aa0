package http

// AddItem godoc
// @Summary Add a product to the cart
// @Description Creates a new cart line; quantity defaults to 1. Adding the same product twice creates two lines.
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=int,title=string,price=number,image=string,quantity=int} true "Cart line"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/cart [post]
func (h *CartHandler) AddItemDoc() {}

// ListItems godoc
// @Summary List cart lines
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param userId query int false "Must match the authenticated user"
// @Success 200 {object} object{success=bool,data=object{items=array,subtotal=string,shipping=string,tax=string,total=string}}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/cart [get]
func (h *CartHandler) ListItemsDoc() {}

// UpdateQuantity godoc
// @Summary Update a cart line quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{cart_item_id=int,quantity=int} true "Quantity update"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/cart [patch]
func (h *CartHandler) UpdateQuantityDoc() {}

// RemoveItem godoc
// @Summary Remove a cart line
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param cartItemId query int true "Cart line ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/cart [delete]
func (h *CartHandler) RemoveItemDoc() {}
