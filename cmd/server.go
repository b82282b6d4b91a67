package cmd

import (
	"biowallet/internal/biometric"
	"biowallet/internal/config"
	"biowallet/internal/core"
	"biowallet/internal/db"
	"biowallet/internal/ethereum"
	"biowallet/internal/http/handler"
	"biowallet/internal/http/handler/middleware"
	"biowallet/internal/http/payload"
	"biowallet/internal/http/server"
	"biowallet/internal/keyderiv"
	"biowallet/internal/ledger"
	"biowallet/internal/repository"
	"biowallet/internal/securestore"
	"biowallet/internal/tracker"
	"biowallet/pkg/jwt"
	"biowallet/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("biowallet", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewWalletRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// device secret store
	secrets, err := securestore.New(config.StorePath, config.StoreKey)
	if err != nil {
		logger.Errorw("failed to open secure store", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("ethereum node connection failed", "error", err)
		return err
	}

	nodeService := ethereum.NewNodeService(logger, client)

	// ledger aggregates
	aggregator := ledger.NewAggregator(logger, repo)

	// confirmation tracker
	confirmations := tracker.NewTracker(logger, repo, aggregator, nodeService)

	// wallet engine
	engine := core.NewEngine(
		logger,
		biometric.NewGate(logger, secrets),
		keyderiv.NewDeriver(),
		secrets,
		repo,
		nodeService,
		confirmations,
		aggregator,
		jwtService,
		config.Network)

	// handler
	walletHlr := handler.NewWalletHandler(
		logger,
		payload.Decoder{},
		engine)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.RegisterWallet, walletHlr.HandleRegister)
	mux.HandleFunc(handler.LoginWallet, walletHlr.HandleLogin)
	mux.HandleFunc(handler.SendTransfer, walletHlr.HandleSend)
	mux.HandleFunc(handler.GetBalance, walletHlr.HandleGetBalance)
	mux.HandleFunc(handler.GetWalletTransactions, walletHlr.HandleGetWalletTransactions)
	mux.HandleFunc(handler.GetWalletHistory, walletHlr.HandleGetWalletHistory)
	mux.HandleFunc(handler.GetMyTransactions, walletHlr.HandleGetMyTransactions)
	mux.HandleFunc(handler.GetTransaction, walletHlr.HandleGetTransaction)
	mux.HandleFunc(handler.GetChainTransaction, walletHlr.HandleGetChainTransaction)
	mux.HandleFunc(handler.GetUser, walletHlr.HandleGetUser)
	mux.HandleFunc(handler.UpdateUser, walletHlr.HandleUpdateUser)
	mux.HandleFunc(handler.GetUsers, walletHlr.HandleGetUsers)
	mux.HandleFunc(handler.GetStats, walletHlr.HandleGetStats)
	mux.HandleFunc(handler.GetDailyStats, walletHlr.HandleGetDailyStats)
	mux.HandleFunc(handler.GetUserGrowth, walletHlr.HandleGetUserGrowth)
	mux.HandleFunc(handler.GetVolumeSeries, walletHlr.HandleGetVolumeSeries)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
