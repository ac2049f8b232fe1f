package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	goBearer "github.com/MrEthical07/goBearer"
	"go.uber.org/zap"
)

// Response codes carried in rejection bodies.
const (
	CodeMissingToken               = 101400
	CodeExpiredOrUnauthorizedToken = 101401
)

// SessionExpiredHeader is set to "true" on responses rejecting an expired token.
const SessionExpiredHeader = "X-Session-Expired"

// ErrMissingToken is reported when the request carries no bearer token.
var ErrMissingToken = errors.New("missing authorization bearer header")

// Option configures a guard.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger logs rejections to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ErrorResponse is the JSON body of a rejection.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RequirePlayer admits requests bearing a valid player token.
func RequirePlayer(codec *goBearer.Codec, opts ...Option) func(http.Handler) http.Handler {
	return guard(codec, goBearer.KindPlayer.String(), func(c *goBearer.Codec, text string) (goBearer.TokenData, error) {
		return c.DecodePlayer(text)
	}, opts)
}

// RequireBrand admits requests bearing a valid brand token.
func RequireBrand(codec *goBearer.Codec, opts ...Option) func(http.Handler) http.Handler {
	return guard(codec, goBearer.KindBrand.String(), func(c *goBearer.Codec, text string) (goBearer.TokenData, error) {
		return c.DecodeBrand(text)
	}, opts)
}

// RequireAdmin admits requests bearing a valid admin token.
func RequireAdmin(codec *goBearer.Codec, opts ...Option) func(http.Handler) http.Handler {
	return guard(codec, goBearer.KindAdmin.String(), func(c *goBearer.Codec, text string) (goBearer.TokenData, error) {
		return c.DecodeAdmin(text)
	}, opts)
}

// RequireUser admits requests bearing a valid player or admin token.
func RequireUser(codec *goBearer.Codec, opts ...Option) func(http.Handler) http.Handler {
	return guard(codec, "user", func(c *goBearer.Codec, text string) (goBearer.TokenData, error) {
		return c.DecodeUser(text)
	}, opts)
}

type decodeFunc func(*goBearer.Codec, string) (goBearer.TokenData, error)

func guard(codec *goBearer.Codec, want string, decode decodeFunc, opts []Option) func(http.Handler) http.Handler {
	o := buildOptions(opts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if codec == nil {
				reject(w, o.logger, r, want, errors.New("no codec configured"))
				return
			}

			token, present := bearerToken(r.Header.Get("Authorization"))
			if !present {
				reject(w, o.logger, r, want, ErrMissingToken)
				return
			}
			if token == "" {
				reject(w, o.logger, r, want, goBearer.ErrInvalidToken)
				return
			}

			data, err := decode(codec, token)
			if err != nil {
				reject(w, o.logger, r, want, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), token, data)))
		})
	}
}

// bearerToken extracts the token from an Authorization value. present is false when
// the value does not use the Bearer scheme.
func bearerToken(value string) (token string, present bool) {
	const bearer = "bearer"
	if len(value) < len(bearer) || !strings.EqualFold(value[:len(bearer)], bearer) {
		return "", false
	}
	rest := value[len(bearer):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func reject(w http.ResponseWriter, logger *zap.Logger, r *http.Request, want string, err error) {
	resp := ErrorResponse{Code: CodeExpiredOrUnauthorizedToken, Message: "unauthorized"}
	switch {
	case errors.Is(err, ErrMissingToken):
		resp = ErrorResponse{Code: CodeMissingToken, Message: "missing token"}
	case errors.Is(err, goBearer.ErrExpiredToken):
		resp.Message = "token expired"
		w.Header().Set(SessionExpiredHeader, "true")
	}

	logger.Info("bearer token rejected",
		zap.String("path", r.URL.Path),
		zap.String("want", want),
		zap.Int("code", resp.Code),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(resp)
}
