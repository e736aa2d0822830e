package http

// CreateSale godoc
// @Summary Create a sale
// @Description Complete a sale: writes the invoice, moves stock out and accrues loyalty points atomically
// @Tags Sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{customer_name=string,customer_id=int,items=array} true "Sale data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/sales [post]
func (h *SalesHandler) CreateSaleDoc() {}

// CancelSale godoc
// @Summary Cancel a sale
// @Description Cancel a completed invoice, returning its stock and clawing back loyalty points
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/sales/{id}/cancel [post]
func (h *SalesHandler) CancelSaleDoc() {}

// ListInvoices godoc
// @Summary List invoices
// @Description Get invoices, optionally filtered by customer or date range
// @Tags Sales
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Param customer_id query int false "Customer filter"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/sales [get]
func (h *SalesHandler) ListInvoicesDoc() {}
