package api

import (
	"encoding/json"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"nainikaessentials.in/admin/internal/admin/catalog"
	"nainikaessentials.in/admin/internal/admin/httpserver/middleware"
)

// productFormMemory caps how much of an upload is buffered in memory.
const productFormMemory = 16 << 20

// CatalogHandler serves the product CRUD endpoints.
type CatalogHandler struct {
	svc catalog.Service
}

// NewCatalogHandler builds the handler over the given service.
func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Mount registers the product routes.
func (h *CatalogHandler) Mount(r chi.Router) {
	r.Get("/products", h.list)
	r.Post("/products", h.create)
	r.Put("/products/{productID}", h.update)
	r.Delete("/products/{productID}", h.remove)
}

type catalogPage struct {
	Products   []catalog.Product `json:"products"`
	Categories []string          `json:"categories"`
}

func (h *CatalogHandler) list(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())
	products, err := h.svc.Products(r.Context(), token)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, catalogPage{
		Products:   products,
		Categories: catalog.Categories(products),
	})
}

func (h *CatalogHandler) create(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}
	token := middleware.TokenFromContext(r.Context())
	created, err := h.svc.Create(r.Context(), token, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) update(w http.ResponseWriter, r *http.Request) {
	productID, ok := urlInt(r, "productID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}
	token := middleware.TokenFromContext(r.Context())
	updated, err := h.svc.Update(r.Context(), token, productID, input)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *CatalogHandler) remove(w http.ResponseWriter, r *http.Request) {
	productID, ok := urlInt(r, "productID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	token := middleware.TokenFromContext(r.Context())
	if err := h.svc.Delete(r.Context(), token, productID); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// decodeInput accepts either a JSON body or a multipart form carrying image
// uploads, mirroring how the console submits the product form.
func (h *CatalogHandler) decodeInput(w http.ResponseWriter, r *http.Request) (catalog.ProductInput, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var body struct {
			Name           string            `json:"name"`
			Category       string            `json:"category"`
			Variants       []catalog.Variant `json:"variants"`
			Discount       float64           `json:"discount"`
			Description    string            `json:"description"`
			ProductDetails map[string]string `json:"productDetails"`
		}
		if !decodeBody(w, r, &body) {
			return catalog.ProductInput{}, false
		}
		return catalog.ProductInput{
			Name:           body.Name,
			Category:       body.Category,
			Variants:       body.Variants,
			Discount:       body.Discount,
			Description:    body.Description,
			ProductDetails: body.ProductDetails,
		}, true
	}

	if err := r.ParseMultipartForm(productFormMemory); err != nil {
		respondError(w, http.StatusBadRequest, "malformed multipart form")
		return catalog.ProductInput{}, false
	}

	input := catalog.ProductInput{
		Name:        r.FormValue("name"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
	}
	if raw := r.FormValue("discount"); raw != "" {
		discount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid discount")
			return catalog.ProductInput{}, false
		}
		input.Discount = discount
	}
	if raw := r.FormValue("variants"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Variants); err != nil {
			respondError(w, http.StatusBadRequest, "invalid variants")
			return catalog.ProductInput{}, false
		}
	}
	if raw := r.FormValue("productDetails"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.ProductDetails); err != nil {
			respondError(w, http.StatusBadRequest, "invalid product details")
			return catalog.ProductInput{}, false
		}
	}

	if headers := r.MultipartForm.File["mainImage"]; len(headers) > 0 {
		image, ok := openUpload(w, headers[0])
		if !ok {
			return catalog.ProductInput{}, false
		}
		input.MainImage = image
	}
	for _, header := range r.MultipartForm.File["thumbnails"] {
		image, ok := openUpload(w, header)
		if !ok {
			return catalog.ProductInput{}, false
		}
		input.Thumbnails = append(input.Thumbnails, *image)
	}
	return input, true
}

func openUpload(w http.ResponseWriter, header *multipart.FileHeader) (*catalog.Image, bool) {
	file, err := header.Open()
	if err != nil {
		respondError(w, http.StatusBadRequest, "unreadable upload")
		return nil, false
	}
	return &catalog.Image{Filename: header.Filename, Reader: file}, true
}
