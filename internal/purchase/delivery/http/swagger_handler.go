package http

// CreatePurchase godoc
// @Summary Create a new purchase
// @Description Create a new purchase record
// @Tags Purchases
// @Accept json
// @Produce json
// @Param request body object{description=string,price=number,payment_method=string} true "Purchase data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /purchase [post]
func (h *PurchaseHandler) CreatePurchaseDoc() {}

// ListPurchases godoc
// @Summary List all purchases
// @Description Get all purchase records
// @Tags Purchases
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /purchase [get]
func (h *PurchaseHandler) ListPurchasesDoc() {}

// UpdatePurchase godoc
// @Summary Update a purchase
// @Description Merge the provided fields over the stored purchase record
// @Tags Purchases
// @Accept json
// @Produce json
// @Param request body object{id=int,description=string,price=number,payment_method=string} true "Purchase data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /purchase [put]
func (h *PurchaseHandler) UpdatePurchaseDoc() {}

// DeletePurchase godoc
// @Summary Delete a purchase
// @Description Delete a purchase record by ID
// @Tags Purchases
// @Param id path int true "Purchase ID"
// @Success 204 {string} string "No Content"
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /purchase/{id} [delete]
func (h *PurchaseHandler) DeletePurchaseDoc() {}
