package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelagency/internal/models"
)

// Countries

// CreateCountry - POST /api/countries
func (h *Handlers) CreateCountry(c *gin.Context) {
	var req models.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	country, err := h.services.Catalog.CreateCountry(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreateIDResponse{ID: country.CountryID})
}

// ListCountries - GET /api/countries
func (h *Handlers) ListCountries(c *gin.Context) {
	countries, err := h.services.Catalog.ListCountries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, countries)
}

// DeleteCountry - DELETE /api/countries/:id
func (h *Handlers) DeleteCountry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Catalog.DeleteCountry(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Cities

// CreateCity - POST /api/cities
func (h *Handlers) CreateCity(c *gin.Context) {
	var req models.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	city, err := h.services.Catalog.CreateCity(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreateIDResponse{ID: city.CityID})
}

// ListCities - GET /api/cities?country_id=
func (h *Handlers) ListCities(c *gin.Context) {
	countryID, _ := strconv.ParseInt(c.DefaultQuery("country_id", "0"), 10, 64)

	cities, err := h.services.Catalog.ListCities(c.Request.Context(), countryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cities)
}

// DeleteCity - DELETE /api/cities/:id
func (h *Handlers) DeleteCity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Catalog.DeleteCity(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Hotels

// CreateHotel - POST /api/hotels
func (h *Handlers) CreateHotel(c *gin.Context) {
	var req models.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hotel, err := h.services.Catalog.CreateHotel(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreateIDResponse{ID: hotel.HotelID})
}

// ListHotels - GET /api/hotels?city_id=
func (h *Handlers) ListHotels(c *gin.Context) {
	cityID, _ := strconv.ParseInt(c.DefaultQuery("city_id", "0"), 10, 64)

	hotels, err := h.services.Catalog.ListHotels(c.Request.Context(), cityID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hotels)
}

// DeleteHotel - DELETE /api/hotels/:id
func (h *Handlers) DeleteHotel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Catalog.DeleteHotel(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Tour types

// CreateTourType - POST /api/tour-types
func (h *Handlers) CreateTourType(c *gin.Context) {
	var req models.CreateTourTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tourType, err := h.services.Catalog.CreateTourType(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreateIDResponse{ID: tourType.TypeID})
}

// ListTourTypes - GET /api/tour-types
func (h *Handlers) ListTourTypes(c *gin.Context) {
	types, err := h.services.Catalog.ListTourTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types)
}

// DeleteTourType - DELETE /api/tour-types/:id
func (h *Handlers) DeleteTourType(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Catalog.DeleteTourType(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
