package http

// AddFavorite godoc
// @Summary Save a product to favorites
// @Tags Favorites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=int,title=string,price=number,image=string,description=string} true "All fields required"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/favorite [post]
func (h *FavoriteHandler) AddFavoriteDoc() {}

// ListFavorites godoc
// @Summary List the caller's favorites
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{favorite_items=array}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/favorite [get]
func (h *FavoriteHandler) ListFavoritesDoc() {}

// RemoveFavorite godoc
// @Summary Remove a favorite
// @Description Fails with 404 when the item is missing or owned by another user
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param id query int true "Favorite ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/favorite [delete]
func (h *FavoriteHandler) RemoveFavoriteDoc() {}
