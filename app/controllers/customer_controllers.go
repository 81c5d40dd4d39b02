package controllers

import (
	"net/http"

	"storefront/app/services"
	"storefront/pkg/response"
)

type CustomerController struct {
	service *services.CustomerService
}

func NewCustomerController(service *services.CustomerService) *CustomerController {
	return &CustomerController{service: service}
}

func (c *CustomerController) Index(w http.ResponseWriter, r *http.Request) {
	page, limit := pageQuery(r)

	customers, pagination, err := c.service.List(page, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Paginated(w, customers, pagination)
}

func (c *CustomerController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		response.NotFound(w)
		return
	}

	customer, err := c.service.Find(id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, customer)
}

func (c *CustomerController) Store(w http.ResponseWriter, r *http.Request) {
	var input services.CustomerInput
	if errs, err := bindJSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	customer, err := c.service.Create(input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Created(w, customer)
}

func (c *CustomerController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		response.NotFound(w)
		return
	}

	var input services.CustomerInput
	if errs, err := bindJSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	customer, err := c.service.Update(id, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, customer)
}

func (c *CustomerController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		response.NotFound(w)
		return
	}

	if err := c.service.Delete(id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.NoContent(w)
}
