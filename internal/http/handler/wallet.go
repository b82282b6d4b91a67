package handler

import (
	"biowallet/internal/biometric"
	"biowallet/internal/core"
	"biowallet/internal/ethereum"
	"biowallet/internal/http/handler/middleware"
	"biowallet/internal/http/payload"
	"biowallet/internal/repository"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"biowallet/internal/ledger"

	"go.uber.org/zap"
)

var (
	RegisterWallet        = "POST /wallet/register"
	LoginWallet           = "POST /wallet/login"
	SendTransfer          = "POST /wallet/send"
	GetBalance            = "GET /wallet/{address}/balance"
	GetWalletTransactions = "GET /wallet/{address}/transactions"
	GetWalletHistory      = "GET /wallet/{address}/history"
	GetMyTransactions     = "GET /wallet/my/transactions"
	GetTransaction        = "GET /transactions/{id}"
	GetChainTransaction   = "GET /chain/transactions/{txHash}"
	GetUser               = "GET /users/{id}"
	UpdateUser            = "PUT /users/{id}"
	GetUsers              = "GET /users"
	GetStats              = "GET /admin/stats"
	GetDailyStats         = "GET /admin/stats/daily"
	GetUserGrowth         = "GET /admin/stats/growth"
	GetVolumeSeries       = "GET /admin/stats/volume"
)

type WalletHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	wallet           WalletService
}

func NewWalletHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, walletService WalletService) *WalletHandler {
	return &WalletHandler{
		logs:             logger,
		requestValidator: requestValidator,
		wallet:           walletService,
	}
}

func (h *WalletHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var pl payload.RegisterRequest
	err := h.requestValidator.DecodeJSONPayload(r, &pl)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not register wallet",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RegisterWallet,
			"request_id", requestId)
		return
	}

	info, err := h.wallet.RegisterWallet(r.Context(), pl.Attestation.ToAuthenticator(), pl.DeviceID)
	if err != nil {
		resp := Response{
			Message: "Registration failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, biometric.ErrAlreadyRegistered) || errors.Is(err, repository.ErrUserExists) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		} else if errors.Is(err, biometric.ErrUserCancelled) || errors.Is(err, biometric.ErrAuthenticationFailed) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else if errors.Is(err, biometric.ErrUnsupportedDevice) || errors.Is(err, biometric.ErrNotEnrolled) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("wallet registration failed",
			"error", err,
			"handler", RegisterWallet,
			"request_id", requestId)
		return
	}

	h.logs.Infow("wallet registered",
		"address", info.Address,
		"handler", RegisterWallet,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Wallet registered",
		Data:    info,
	}, http.StatusCreated, requestId)
}

func (h *WalletHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var pl payload.LoginRequest
	err := h.requestValidator.DecodeJSONPayload(r, &pl)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", LoginWallet,
			"request_id", requestId)
		return
	}

	info, err := h.wallet.Login(r.Context(), pl.Attestation.ToAuthenticator())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, biometric.ErrNotRegistered) || errors.Is(err, core.ErrWalletNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else if errors.Is(err, biometric.ErrUserCancelled) || errors.Is(err, biometric.ErrAuthenticationFailed) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else if errors.Is(err, biometric.ErrUnsupportedDevice) || errors.Is(err, biometric.ErrNotEnrolled) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", LoginWallet,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Login successful",
		Data:    info,
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", SendTransfer, "request_id", requestId)
		return
	}

	var pl payload.SendRequest
	err := h.requestValidator.DecodeJSONPayload(r, &pl)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not send transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SendTransfer,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transfer request received",
		"from", pl.FromAddress,
		"to", pl.ToAddress,
		"amount", pl.Amount,
		"handler", SendTransfer,
		"request_id", requestId)

	record, err := h.wallet.SubmitTransfer(r.Context(), authToken, pl.Attestation.ToAuthenticator(), pl.ToTransferRequest())
	if err != nil {
		resp := Response{
			Message: "Could not send transaction",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidAmount) || errors.Is(err, core.ErrInvalidAddress) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else if errors.Is(err, core.ErrSessionInvalid) ||
			errors.Is(err, biometric.ErrUserCancelled) ||
			errors.Is(err, biometric.ErrAuthenticationFailed) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else if errors.Is(err, core.ErrBroadcastRejected) {
			httpCode = http.StatusBadGateway
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("transfer submission failed",
			"error", err,
			"handler", SendTransfer,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transaction broadcast",
		"tx_hash", record.TxHash,
		"handler", SendTransfer,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Transaction submitted",
		Data:    record,
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	address := r.PathValue("address")
	balance, err := h.wallet.WalletBalance(r.Context(), address)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve balance",
			Error:   fmt.Errorf("get balance: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get balance",
			"error", err,
			"handler", GetBalance,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"address": address,
		"balance": balance,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetWalletTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	address := r.PathValue("address")
	transactions, err := h.wallet.WalletTransactions(r.Context(), address)
	if err != nil {
		resp := Response{
			Message: "Could not retrieve transactions",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrWalletNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = fmt.Errorf("get transactions: %w", err).Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get wallet transactions",
			"error", err,
			"handler", GetWalletTransactions,
			"request_id", requestId)
		return
	}

	resp := map[string][]repository.Transaction{
		"transactions": transactions,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetWalletHistory(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	address := r.PathValue("address")
	events, err := h.wallet.OnChainHistory(r.Context(), address)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve on-chain history",
			Error:   fmt.Errorf("scan history: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to scan on-chain history",
			"error", err,
			"handler", GetWalletHistory,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"transfers": events,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetMyTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", GetMyTransactions, "request_id", requestId)
		return
	}

	limit, err := queryInt(r, "limit", 10, 1)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid limit parameter",
			"error", err,
			"handler", GetMyTransactions,
			"request_id", requestId)
		return
	}

	offset, err := queryInt(r, "offset", 0, 0)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid offset parameter",
			"error", err,
			"handler", GetMyTransactions,
			"request_id", requestId)
		return
	}

	transactions, total, err := h.wallet.UserTransactions(r.Context(), authToken, limit, offset)
	if err != nil {
		resp := Response{
			Message: "Failed to get user transactions",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrSessionInvalid) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = fmt.Errorf("get user transactions: %w", err).Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get user transactions",
			"error", err,
			"handler", GetMyTransactions,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"transactions": transactions,
		"total":        total,
		"limit":        limit,
		"offset":       offset,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	id := r.PathValue("id")
	record, err := h.wallet.TransactionByID(r.Context(), id)
	if err != nil {
		resp := Response{
			Message: "Could not retrieve transaction",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, repository.ErrTransactionNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = fmt.Errorf("get transaction: %w", err).Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get transaction",
			"error", err,
			"handler", GetTransaction,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: record}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetChainTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	txHash := r.PathValue("txHash")
	event, pending, err := h.wallet.ChainTransaction(r.Context(), txHash)
	if err != nil {
		resp := Response{
			Message: "Could not retrieve transaction",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, ethereum.ErrTxNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = fmt.Errorf("get chain transaction: %w", err).Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get chain transaction",
			"error", err,
			"handler", GetChainTransaction,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"transaction": event,
		"pending":     pending,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	id := r.PathValue("id")
	user, err := h.wallet.UserByID(r.Context(), id)
	if err != nil {
		resp := Response{
			Message: "Could not retrieve user",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, repository.ErrUserNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = fmt.Errorf("get user: %w", err).Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get user",
			"error", err,
			"handler", GetUser,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: user}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var pl payload.UpdateUserRequest
	err := h.requestValidator.DecodeJSONPayload(r, &pl)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not update user",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateUser,
			"request_id", requestId)
		return
	}

	id := r.PathValue("id")
	user, err := h.wallet.UpdateUser(r.Context(), id, pl.ToUserUpdate())
	if err != nil {
		resp := Response{
			Message: "Could not update user",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, repository.ErrUserNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = fmt.Errorf("update user: %w", err).Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to update user",
			"error", err,
			"handler", UpdateUser,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "User updated",
		Data:    user,
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetUsers(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	users, err := h.wallet.Users(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve users",
			Error:   fmt.Errorf("list users: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list users",
			"error", err,
			"handler", GetUsers,
			"request_id", requestId)
		return
	}

	resp := map[string][]repository.User{
		"users": users,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	totals, err := h.wallet.Stats(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve stats",
			Error:   fmt.Errorf("get stats: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get stats",
			"error", err,
			"handler", GetStats,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: totals}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetDailyStats(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.respond(w, Response{
				Message: "Request failed",
				Error:   "days must be a positive integer",
			}, http.StatusBadRequest,
				requestId)
			h.logs.Errorw("invalid days parameter",
				"days", raw,
				"handler", GetDailyStats,
				"request_id", requestId)
			return
		}
		days = parsed
	}

	stats, err := h.wallet.DailyStats(r.Context(), days)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve daily stats",
			Error:   fmt.Errorf("get daily stats: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get daily stats",
			"error", err,
			"handler", GetDailyStats,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"daily": stats,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetUserGrowth(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	period, err := ledger.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid period parameter",
			"error", err,
			"handler", GetUserGrowth,
			"request_id", requestId)
		return
	}

	points, err := h.wallet.UserGrowth(r.Context(), period)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve user growth",
			Error:   fmt.Errorf("get user growth: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get user growth",
			"error", err,
			"handler", GetUserGrowth,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"growth": points,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetVolumeSeries(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	period, err := ledger.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid period parameter",
			"error", err,
			"handler", GetVolumeSeries,
			"request_id", requestId)
		return
	}

	points, err := h.wallet.VolumeSeries(r.Context(), period)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve volume series",
			Error:   fmt.Errorf("get volume series: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get volume series",
			"error", err,
			"handler", GetVolumeSeries,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"volume": points,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent and rejecting values below min.
func queryInt(r *http.Request, name string, def int, min int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < min {
		return 0, fmt.Errorf("%s must be an integer of at least %d", name, min)
	}
	return parsed, nil
}

func (h *WalletHandler) requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func (h *WalletHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
