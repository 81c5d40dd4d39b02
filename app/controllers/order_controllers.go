package controllers

import (
	"net/http"

	"storefront/app/services"
	"storefront/pkg/response"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	page, limit := pageQuery(r)

	orders, pagination, err := c.service.List(page, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Paginated(w, orders, pagination)
}

func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		response.NotFound(w)
		return
	}

	order, err := c.service.Find(id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, order)
}

// Items lists the line items of one order. Items are read-only at the HTTP
// level; writes always go through order create/update.
func (c *OrderController) Items(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		response.NotFound(w)
		return
	}

	items, err := c.service.Items(id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, items)
}

func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	var input services.CreateOrderInput
	if errs, err := bindJSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.Create(input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Created(w, order)
}

func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		response.NotFound(w)
		return
	}

	var input services.UpdateOrderInput
	if errs, err := bindJSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.Update(id, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, order)
}

func (c *OrderController) Destroy(w http.ResponseWriter, r *http.Request) {
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
