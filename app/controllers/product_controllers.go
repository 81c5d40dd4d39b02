package controllers

import (
	"net/http"

	"storefront/app/services"
	"storefront/pkg/response"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	page, limit := pageQuery(r)

	products, pagination, err := c.service.List(page, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Paginated(w, products, pagination)
}

func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		response.NotFound(w)
		return
	}

	product, err := c.service.Find(id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, product)
}

func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var input services.ProductInput
	if errs, err := bindJSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Create(input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Created(w, product)
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		response.NotFound(w)
		return
	}

	var input services.ProductInput
	if errs, err := bindJSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Update(id, input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, product)
}

func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
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
