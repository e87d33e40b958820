package list_appointments

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(name, pageStr, perPageStr string) (*models.ListRequest, error) {
	req := &models.ListRequest{
		NameFilter: strings.TrimSpace(name),
		Page:       1,
	}

	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return nil, fmt.Errorf("invalid page value: %w", err)
		}
		req.Page = page
	}

	if perPageStr != "" {
		perPage, err := strconv.Atoi(perPageStr)
		if err != nil {
			return nil, fmt.Errorf("invalid perPage value: %w", err)
		}
		req.PerPage = perPage
	}

	return req, nil
}
