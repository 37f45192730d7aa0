package http

// ListProducts godoc
// @Summary List catalog products
// @Description One page of the catalog, optionally filtered by category ("All" means unfiltered)
// @Tags Catalog
// @Produce json
// @Param page query int false "1-based page" default(1)
// @Param limit query int false "Page size" default(20)
// @Param category query string false "Category filter"
// @Success 200 {object} object{success=bool,data=object{products=array,page=int,limit=int,total=int,has_more=bool}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/catalog/products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// CountProducts godoc
// @Summary Count catalog products
// @Description Number of distinct products available for a category filter
// @Tags Catalog
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} object{success=bool,data=object{category=string,total=int}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/catalog/products/count [get]
func (h *CatalogHandler) CountProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/catalog/products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// ListCategories godoc
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object{categories=array}}
// @Router /api/catalog/categories [get]
func (h *CatalogHandler) ListCategoriesDoc() {}
