package query

import (
	"context"

	"github.com/eaglebank/services/shared/models"
)

// AuthRunningStatus is the fixed liveness marker reported by the auth service.
const AuthRunningStatus = "auth-service-running"

// AuthQueryService answers liveness checks. It holds no state: issuing or
// checking credentials is not part of this service.
type AuthQueryService struct{}

func NewAuthQueryService() *AuthQueryService {
	return &AuthQueryService{}
}

func (s *AuthQueryService) Health(context.Context) models.StatusResponse {
	return models.StatusResponse{Status: AuthRunningStatus}
}
