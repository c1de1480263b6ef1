package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simplecontainer/mirror/internal/helpers"
	"github.com/simplecontainer/mirror/pkg/api"
	"github.com/simplecontainer/mirror/pkg/command"
	"github.com/simplecontainer/mirror/pkg/configuration"
	"github.com/simplecontainer/mirror/pkg/encrypt"
	"github.com/simplecontainer/mirror/pkg/hook"
	"github.com/simplecontainer/mirror/pkg/logger"
	"github.com/simplecontainer/mirror/pkg/mirror"
	"github.com/simplecontainer/mirror/pkg/queue"
	"github.com/simplecontainer/mirror/pkg/repository"
	"github.com/simplecontainer/mirror/pkg/static"
	"github.com/simplecontainer/mirror/pkg/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func Serve() {
	Commands = append(Commands,
		command.NewBuilder().Parent("mirror").Name("serve").Short("Run the mirror daemon").Function(cmdServe).Flags(cmdServeFlags).Build(),
	)
}

func cmdServe(args []string) {
	conf, err := configuration.Load(viper.GetViper(), viper.GetString("config"))

	if err != nil {
		helpers.PrintAndExit(err, 1)
	}

	logger.Log = logger.NewLogger(conf.Log, []string{"stdout"}, []string{"stderr"})
	defer logger.Log.Sync()

	key, err := encrypt.LoadOrCreateKey(conf.Key.File)

	if err != nil {
		logger.Log.Fatal("failed to load encryption key", zap.String("file", conf.Key.File), zap.Error(err))
	}

	if err = encrypt.Init(key); err != nil {
		logger.Log.Fatal("failed to initialize credential codec", zap.Error(err))
	}

	codec, err := encrypt.Default()

	if err != nil {
		logger.Log.Fatal("credential codec is not available", zap.Error(err))
	}

	store, closeStore, err := NewStore(conf)

	if err != nil {
		logger.Log.Fatal("failed to open settings store", zap.String("backend", conf.Store.Backend), zap.Error(err))
	}

	defer closeStore()

	executor, err := NewPusher(conf)

	if err != nil {
		logger.Log.Fatal("failed to create push executor", zap.String("executor", conf.Push.Executor), zap.Error(err))
	}

	pwq := queue.NewPriorityWorkerQueue(conf.Workers, queue.WithRateLimit(conf.Rate, conf.Workers))
	pwq.Start()

	scheduler := mirror.New(mirror.Options{
		Queue:       pwq,
		Pusher:      executor,
		Codec:       codec,
		PushTimeout: conf.Push.Timeout,
		Logger:      logger.Log,
	})

	h := hook.New(hook.Options{
		Resolver:  repository.NewResolver(conf.Repositories.Root, conf.Repositories.Suffix),
		Store:     store,
		Validator: validation.New(),
		Scheduler: scheduler,
		Encrypter: codec,
		Logger:    logger.Log,
	})

	if conf.Log != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:         conf.Listen,
		Handler:      api.NewApi(h, Info, logger.Log).Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.Info("mirror daemon listening",
			zap.String("listen", conf.Listen),
			zap.String("repositories", conf.Repositories.Root),
			zap.String("store", conf.Store.Backend),
			zap.String("executor", conf.Push.Executor),
			zap.Int("workers", conf.Workers),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	logger.Log.Info("shutting down, pending mirror retries are dropped",
		zap.Int("queued", pwq.Len()),
		zap.Int("delayed", pwq.Delayed()),
	)

	shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = server.Shutdown(shutdown); err != nil {
		logger.Log.Error("failed to shut down http server", zap.Error(err))
	}

	pwq.Stop()
}

func cmdServeFlags(cmd *cobra.Command) {
	cmd.Flags().String("listen", static.DEFAULT_LISTEN, "Address the api listens on")
	cmd.Flags().String("repositories.root", "", "Directory holding the primary repositories")
	cmd.Flags().String("repositories.suffix", static.DEFAULT_REPO_SUFFIX, "Directory suffix tried when a repository name has none")
	cmd.Flags().String("key.file", static.DEFAULT_KEY_FILE, "Path of the encryption key, created when missing")
	cmd.Flags().String("store.backend", static.STORE_MEMORY, "Settings store: memory, file, etcd")
	cmd.Flags().String("store.directory", "", "Directory of the file settings store")
	cmd.Flags().StringSlice("etcd.endpoints", []string{"localhost:2379"}, "Etcd endpoints of the etcd settings store")
	cmd.Flags().String("etcd.prefix", static.DEFAULT_ETCD_PREFIX, "Key prefix of the etcd settings store")
	cmd.Flags().Int("workers", static.DEFAULT_WORKERS, "Concurrent mirror pushes")
	cmd.Flags().Float64("rate", 0, "Pushes started per second across all workers, 0 is unlimited")
	cmd.Flags().Duration("push.timeout", static.DEFAULT_PUSH_TIMEOUT, "Timeout of a single mirror push")
	cmd.Flags().String("push.executor", static.EXECUTOR_GIT, "Push executor: git (in-process) or command (git binary)")
	cmd.Flags().String("push.command", static.DEFAULT_GIT_COMMAND, "Git command line used by the command executor")
	cmd.Flags().String("ssh.privateKey", "", "Private key used for ssh mirrors")
	cmd.Flags().String("ssh.knownHosts", "", "known_hosts file used to verify ssh mirrors")
}
