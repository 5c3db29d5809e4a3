package http

// CreateClient godoc
// @Summary Create a new client
// @Description Create a new client record
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,phone=string,address=string} true "Client data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /client [post]
func (h *ClientHandler) CreateClientDoc() {}

// ListClients godoc
// @Summary List all clients
// @Description Get all client records
// @Tags Clients
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /client [get]
func (h *ClientHandler) ListClientsDoc() {}

// UpdateClient godoc
// @Summary Update a client
// @Description Merge the provided fields over the stored client record
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body object{id=int,name=string,email=string,phone=string,address=string} true "Client data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /client [put]
func (h *ClientHandler) UpdateClientDoc() {}

// DeleteClient godoc
// @Summary Delete a client
// @Description Delete a client record by ID
// @Tags Clients
// @Param id path int true "Client ID"
// @Success 204 {string} string "No Content"
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /client/{id} [delete]
func (h *ClientHandler) DeleteClientDoc() {}
