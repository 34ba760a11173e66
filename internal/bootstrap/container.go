package bootstrap

import (
	"context"
	"time"

	"vibe-notes-be/internal/config"
	"vibe-notes-be/internal/controller"
	"vibe-notes-be/internal/pkg/identity"
	"vibe-notes-be/internal/pkg/logger"
	"vibe-notes-be/internal/pkg/mailer"
	"vibe-notes-be/internal/repository/memory"
	redisStore "vibe-notes-be/internal/repository/redis"
	"vibe-notes-be/internal/repository/unitofwork"
	"vibe-notes-be/internal/service"
	"vibe-notes-be/internal/websocket"
	pktNats "vibe-notes-be/pkg/nats"
	"vibe-notes-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	NoteController      controller.INoteController
	ProfileController   controller.IProfileController
	TestEmailController controller.ITestEmailController
	RealtimeController  controller.IRealtimeController

	// Background Services (Exposed for main.go to run)
	ConsumerService  service.IConsumerService
	MailAuditService service.IMailAuditService
	WebSocketHub     *websocket.Hub

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	return NewContainerWithLogger(db, cfg, sysLogger)
}

func NewContainerWithLogger(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) *Container {
	c := &Container{Logger: sysLogger}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	mailLogger := logger.NewIsolatedLogger(cfg.App.MailLogFilePath)

	// 2. Key/value stores: Redis when reachable, process memory otherwise.
	rdb := connectRedis(cfg.App.RedisURL, sysLogger)
	var sessionStore, cacheStore store.KVStore
	if rdb != nil {
		sessionStore = redisStore.NewKVStore(rdb, "vibe:")
		cacheStore = redisStore.NewKVStore(rdb, "vibe:")
		c.closers = append(c.closers, func() { rdb.Close() })
	} else {
		sessionStore = memory.NewKVStore()
		cacheStore = memory.NewKVStore()
	}

	// 3. Collaborators
	jwtProvider := identity.NewJWTProvider(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, sessionStore)
	if cfg.Auth.JWTSecret == "" {
		sysLogger.Error("Container", identity.ErrNotConfigured.Error(), nil)
	}

	mailProvider := mailer.NewSMTPProvider(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	if !mailProvider.Configured() {
		sysLogger.Warn("Container", mailer.ErrNotConfigured.Error(), nil)
	}
	mailService := service.NewNoteMailService(mailProvider, cfg.Mail.SenderEmail, cfg.Mail.SenderName, mailLogger)

	// 4. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { pubSub.Close() })

	// EventPublisher stays a nil interface when NATS is unavailable.
	var eventPublisher service.EventPublisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("Container", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}

		natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("Container", "Failed to connect to NATS Subscriber", map[string]interface{}{"error": err.Error()})
		} else {
			c.MailAuditService = service.NewMailAuditService(natsSub, mailLogger)
			c.closers = append(c.closers, natsSub.Close)
		}
	}

	// 5. Realtime
	c.WebSocketHub = websocket.NewHub(rdb, sysLogger)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Cache.RevalidationTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Cache.RevalidationTopic, c.WebSocketHub, sysLogger)

	noteService := service.NewNoteService(service.NoteServiceDeps{
		UowFactory:       uowFactory,
		Identity:         jwtProvider,
		MailService:      mailService,
		PublisherService: publisherService,
		EventPublisher:   eventPublisher,
		ListCache:        cacheStore,
		ListCacheTTL:     cfg.Cache.NotesListTTL,
		LoginPath:        cfg.App.LoginPath,
		Logger:           sysLogger,
	})
	profileService := service.NewProfileService(uowFactory, jwtProvider, cfg.App.LoginPath, sysLogger)
	authService := service.NewAuthService(uowFactory, jwtProvider, jwtProvider, eventPublisher, cfg.App.LoginPath, sysLogger)

	// 7. Controllers
	c.AuthController = controller.NewAuthController(authService, cfg.App.Environment == "production")
	c.NoteController = controller.NewNoteController(noteService)
	c.ProfileController = controller.NewProfileController(profileService)
	c.RealtimeController = controller.NewRealtimeController(jwtProvider, c.WebSocketHub, sysLogger)
	if cfg.App.TestEmailEnabled {
		c.TestEmailController = controller.NewTestEmailController(mailService, sysLogger)
	}

	return c
}

func connectRedis(url string, log logger.ILogger) *redis.Client {
	if url == "" {
		log.Info("Container", "REDIS_URL not set, using in-memory stores", nil)
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("Container", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("Container", "Failed to connect to Redis, using in-memory stores", map[string]interface{}{"error": err.Error()})
		rdb.Close()
		return nil
	}
	return rdb
}

// Close releases broker and cache connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
