package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"magasin/internal/domain"
	"magasin/internal/service"
	"magasin/internal/storage"

	"github.com/gorilla/mux"
)

// maxUploadMemory bounds how much of a multipart body is buffered in
// memory before spilling to temp files.
const maxUploadMemory = 32 << 20

// imageFormField is the multipart field the attachment arrives under.
const imageFormField = "image"

type ProductHandler struct {
	productService *service.ProductService
	fileStore      storage.FileStore
}

func NewProductHandler(productService *service.ProductService, fileStore storage.FileStore) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		fileStore:      fileStore,
	}
}

type listProductsResponse struct {
	Products    []domain.Product `json:"products"`
	TotalPages  int64            `json:"totalPages"`
	CurrentPage int64            `json:"currentPage"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.productService.List(r.Context(), parseListQuery(r))
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		respondError(w, http.StatusInternalServerError, "Error fetching products", err)
		return
	}

	respondJSON(w, http.StatusOK, listProductsResponse{
		Products:    list.Products,
		TotalPages:  list.TotalPages,
		CurrentPage: list.Page,
	})
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	name := r.FormValue("name")
	category := r.FormValue("category")
	description := r.FormValue("description")
	price, priceErr := strconv.ParseFloat(r.FormValue("price"), 64)

	// A zero price is rejected along with a missing one; clients depend
	// on this check.
	if name == "" || category == "" || priceErr != nil || price == 0 {
		respondError(w, http.StatusBadRequest, "Name, price, and category are required", nil)
		return
	}

	var image string
	file, header, err := r.FormFile(imageFormField)
	switch {
	case err == nil:
		defer file.Close()
		image, err = h.fileStore.Save(file, header.Filename)
		if err != nil {
			log.Printf("Error storing product image: %v", err)
			respondError(w, http.StatusInternalServerError, "Error creating product", err)
			return
		}
	case errors.Is(err, http.ErrMissingFile):
		// No attachment; image stays unset.
	default:
		respondError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	product, err := h.productService.Create(r.Context(), service.CreateProductInput{
		Name:        name,
		Price:       price,
		Category:    category,
		Description: description,
		Image:       image,
	})
	if err != nil {
		log.Printf("Error creating product: %v", err)
		respondError(w, http.StatusInternalServerError, "Error creating product", err)
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var update domain.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := h.productService.Update(r.Context(), id, update)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "Product not found", nil)
			return
		}
		log.Printf("Error updating product %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Error updating product", err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	// The attachment file, if any, is left on disk. Nothing references
	// it afterwards; there is no garbage collection.
	if err := h.productService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "Product not found", nil)
			return
		}
		log.Printf("Error deleting product %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Error deleting product", err)
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}
