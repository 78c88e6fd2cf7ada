package handlers

import (
	"net/http"
	"strings"

	"ieso-dashboard/internal/api/models"
	"ieso-dashboard/internal/data"
	"ieso-dashboard/internal/model"

	"github.com/gin-gonic/gin"
)

// GetOptions handles GET /api/v1/options. The UI builds its direction and
// metric selectboxes from this so the two sides always enumerate the same
// combinations the bundle builder produces.
func GetOptions(c *gin.Context) {
	resp := models.OptionsResponse{}
	for _, d := range model.Directions {
		resp.Directions = append(resp.Directions, models.Option{
			Value: d.String(),
			Label: d.Label(),
		})
	}
	for _, m := range model.Metrics {
		resp.Metrics = append(resp.Metrics, models.Option{
			Value: m.String(),
			Label: m.Label(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// ListDatasets returns the configured dataset registry.
func ListDatasets(datasets []data.Dataset) gin.HandlerFunc {
	return func(c *gin.Context) {
		infos := make([]models.DatasetInfo, len(datasets))
		for i, ds := range datasets {
			infos[i] = models.DatasetInfo{
				ID:         ds.ID,
				Name:       ds.Name,
				Resolution: ds.Resolution,
			}
		}
		c.JSON(http.StatusOK, gin.H{"datasets": infos})
	}
}

// ListLocations handles GET /api/v1/locations: the distinct pricing locations
// in the statistics dataset, for the UI's location multiselect.
func (h *StatsHandler) ListLocations(c *gin.Context) {
	records, err := h.Loader.FetchDataset(h.Dataset)
	if err != nil {
		internalError(c, err)
		return
	}

	seen := make(map[string]struct{})
	var locations []string
	for _, r := range records {
		if _, ok := seen[r.Location]; ok {
			continue
		}
		seen[r.Location] = struct{}{}
		locations = append(locations, r.Location)
	}

	c.JSON(http.StatusOK, gin.H{
		"locations": locations,
		"count":     len(locations),
	})
}

func splitLocations(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
