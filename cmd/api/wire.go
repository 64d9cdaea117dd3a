//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/soda-altruism/portal/client"
	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/x/catalog"
	"github.com/soda-altruism/portal/x/inbox"
	"github.com/soda-altruism/portal/x/policy"
	"github.com/soda-altruism/portal/x/profile"
	"github.com/soda-altruism/portal/x/session"
	"github.com/soda-altruism/portal/x/socket"
)

var profileServiceProvider = wire.NewSet(profile.NewService, profile.NewRepository)
var catalogServiceProvider = wire.NewSet(catalog.NewService, catalog.NewRepository)

func SetupProfileService(mc *memcache.Client, config core.Config) core.ProfileService {
	wire.Build(profileServiceProvider, client.NewClient)
	return nil
}

func SetupSessionService(rdb *redis.Client, mc *memcache.Client, config core.Config) core.SessionService {
	wire.Build(session.NewService, session.NewRepository, profileServiceProvider, client.NewClient)
	return nil
}

func SetupPolicyService(db *gorm.DB, config core.Config) core.PolicyService {
	wire.Build(policy.NewService, policy.NewRepository, client.NewClient)
	return nil
}

func SetupCatalogService(db *gorm.DB, rdb *redis.Client, config core.Config) core.CatalogService {
	wire.Build(catalogServiceProvider, client.NewClient)
	return nil
}

func SetupInboxService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) core.InboxService {
	wire.Build(inbox.NewService, inbox.NewRepository, catalogServiceProvider, profileServiceProvider, client.NewClient)
	return nil
}

func SetupSocketHandler(rdb *redis.Client) socket.Handler {
	wire.Build(socket.NewHandler, socket.NewService)
	return nil
}
