package http

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a new product record
// @Tags Products
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,price=number,stock=int} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /product [post]
func (h *ProductHandler) CreateProductDoc() {}

// ListProducts godoc
// @Summary List all products
// @Description Get all product records with their current stock
// @Tags Products
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /product [get]
func (h *ProductHandler) ListProductsDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Merge the provided fields over the stored product record
// @Tags Products
// @Accept json
// @Produce json
// @Param request body object{id=int,name=string,description=string,price=number} true "Product data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /product [put]
func (h *ProductHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product record by ID
// @Tags Products
// @Param id path int true "Product ID"
// @Success 204 {string} string "No Content"
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /product/{id} [delete]
func (h *ProductHandler) DeleteProductDoc() {}

// RestockInventory godoc
// @Summary Restock a product
// @Description Record an inventory entry and increment the product's stock
// @Tags Products
// @Accept json
// @Produce json
// @Param request body object{product_id=int,quantity=int} true "Restock data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /product/inventory [post]
func (h *ProductHandler) RestockInventoryDoc() {}
