package services

import (
	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
	portsrepo "github.com/newskeeper/newskeeper_backend/internal/core/ports/repositories"
	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
	"github.com/newskeeper/newskeeper_backend/internal/platform/config"
	"github.com/newskeeper/newskeeper_backend/internal/utils"
)

// NewServiceContainer wires every application service over the injected
// repositories, news port and provider adapters. Everything is constructed
// here, at startup, so nothing in the request path touches process-wide state.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	news portssvc.NewsSvcFacade,
	providers map[domain.AuthProvider]portssvc.OAuthProviderSvcFacade,
) *portssvc.ServiceContainer {
	hasher := utils.NewBcryptHasher()
	codec := utils.NewJWTCodec(cfg.SessionSecret, cfg.SessionIssuer)

	return &portssvc.ServiceContainer{
		User:           NewUserService(repos.User, hasher),
		Session:        NewSessionService(codec, cfg.SessionExpiryDuration),
		History:        NewHistoryService(news, repos.User, repos.Article),
		OAuthProviders: providers,
	}
}
