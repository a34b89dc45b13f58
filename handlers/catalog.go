package handlers

import (
	"context"
	"net/http"

	catalogRepo "festivo/database/repository/catalog"
	"festivo/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only vendor package catalog.
type CatalogHandler struct {
	Repo catalogRepo.Repository
}

func NewCatalogHandler(repo catalogRepo.Repository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// ListVendorPackages returns all packages a vendor offers.
func (h *CatalogHandler) ListVendorPackages(c *gin.Context) {
	vendorID := c.Query("vendorId")
	if vendorID == "" {
		utils.JSONError(c, http.StatusBadRequest, "vendorId query parameter is required", "")
		return
	}

	packages, err := h.Repo.GetByVendorID(context.Background(), vendorID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load packages", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": packages})
}

// GetPackage returns a single catalog package by ID.
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	pkg, err := h.Repo.GetByID(context.Background(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "package not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"package": pkg})
}
