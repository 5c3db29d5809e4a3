package http

// CreateEmployee godoc
// @Summary Create a new employee
// @Description Create a new employee record
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,phone=string,role=string,hire_date=string} true "Employee data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /employee [post]
func (h *EmployeeHandler) CreateEmployeeDoc() {}

// ListEmployees godoc
// @Summary List all employees
// @Description Get all employee records
// @Tags Employees
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /employee [get]
func (h *EmployeeHandler) ListEmployeesDoc() {}

// UpdateEmployee godoc
// @Summary Update an employee
// @Description Merge the provided fields over the stored employee record
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body object{id=int,name=string,email=string,phone=string,role=string,hire_date=string} true "Employee data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /employee [put]
func (h *EmployeeHandler) UpdateEmployeeDoc() {}

// DeleteEmployee godoc
// @Summary Delete an employee
// @Description Delete an employee record by ID
// @Tags Employees
// @Param id path int true "Employee ID"
// @Success 204 {string} string "No Content"
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,message=string,error=string}
// @Router /employee/{id} [delete]
func (h *EmployeeHandler) DeleteEmployeeDoc() {}
