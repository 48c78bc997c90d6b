package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"decisionengine/internal/domain"
	"decisionengine/internal/judge"
)

func (m ApiHandler) listProfiles(c *gin.Context) {
	profiles, err := m.ProfileRepository.List()
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}
	c.JSON(200, profiles)
}

type createProfileRequest struct {
	Name string `json:"name"`
}

func (m ApiHandler) createProfile(c *gin.Context) {
	var requestBody createProfileRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		m.returnErrorJson(domain.ValidationError{Reason: fmt.Sprintf("failed to read request body: %v", err)}, c)
		return
	}

	profile, err := m.ProfileRepository.Create(requestBody.Name)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}
	c.JSON(200, profile)
}

func (m ApiHandler) getProfile(c *gin.Context) {
	id, err := parseProfileID(c)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	profile, err := m.ProfileRepository.Get(id)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}
	c.JSON(200, profile)
}

type updateProfileTickersRequest struct {
	AddTickers    []string `json:"add_tickers"`
	RemoveTickers []string `json:"remove_tickers"`
}

func (m ApiHandler) updateProfileTickers(c *gin.Context) {
	id, err := parseProfileID(c)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	var requestBody updateProfileTickersRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		m.returnErrorJson(domain.ValidationError{Reason: fmt.Sprintf("failed to read request body: %v", err)}, c)
		return
	}

	// symbols headed into the watchlist must be well formed; removals
	// only need case normalization, which the profile handles itself
	addTickers := make([]string, 0, len(requestBody.AddTickers))
	for _, symbol := range requestBody.AddTickers {
		validated, err := judge.ValidateTicker(symbol)
		if err != nil {
			m.returnErrorJson(err, c)
			return
		}
		addTickers = append(addTickers, validated)
	}

	profile, err := m.ProfileRepository.UpdateTickers(id, addTickers, requestBody.RemoveTickers)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}
	c.JSON(200, profile)
}

func (m ApiHandler) deleteProfile(c *gin.Context) {
	id, err := parseProfileID(c)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	if err := m.ProfileRepository.Delete(id); err != nil {
		m.returnErrorJson(err, c)
		return
	}
	c.Status(204)
}

func parseProfileID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domain.ValidationError{Reason: fmt.Sprintf("malformed profile id %q", c.Param("id"))}
	}
	return id, nil
}
