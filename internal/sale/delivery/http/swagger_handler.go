package http

// CreateSale godoc
// @Summary Create a new sale
// @Description Create a sale with its items, decrementing product stock atomically
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body object{client_id=int,employee_id=int,total_amount=number,status=string,items=array} true "Sale data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /sale [post]
func (h *SaleHandler) CreateSaleDoc() {}

// ListSales godoc
// @Summary List all sales
// @Description Get all sale headers
// @Tags Sales
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /sale [get]
func (h *SaleHandler) ListSalesDoc() {}

// GetSale godoc
// @Summary Get a sale with its items
// @Description Get one sale header together with its items and their products
// @Tags Sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /sale/{id} [get]
func (h *SaleHandler) GetSaleDoc() {}

// UpdateSale godoc
// @Summary Update a sale status
// @Description Update the status of an existing sale
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body object{id=int,status=string} true "Sale status"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /sale [put]
func (h *SaleHandler) UpdateSaleDoc() {}

// DeleteSale godoc
// @Summary Delete a sale
// @Description Delete a sale record by ID
// @Tags Sales
// @Param id path int true "Sale ID"
// @Success 204 {string} string "No Content"
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /sale/{id} [delete]
func (h *SaleHandler) DeleteSaleDoc() {}
