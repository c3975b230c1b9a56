// Package action implements the authorization wrapper every back-office
// mutation and sensitive read passes through. An Action is registered once
// with an explicit Config (class, input prototype, handler) and invoked per
// request with the resolved actor. The pipeline order is part of the
// contract: role check, then input decoding, then schema validation, then
// the handler. An unauthorized caller is rejected before its payload is
// looked at, so it never learns whether the input was well-formed.
package action

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"backoffice-api/apperr"
	"backoffice-api/models"
	"backoffice-api/policy"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/rs/zerolog"
	"gopkg.in/go-playground/validator.v9"
	entrans "gopkg.in/go-playground/validator.v9/translations/en"
)

const genericErrorMessage = "something went wrong, please try again later"

// BindFunc decodes the request payload into the action's input value. The
// HTTP layer supplies it (gin's ShouldBindJSON or ShouldBindQuery); tests
// supply plain closures.
type BindFunc func(dst any) error

// HandlerFunc is the caller-supplied business logic. It receives the input
// already decoded and validated; input is nil for actions registered without
// an input prototype.
type HandlerFunc func(ctx context.Context, actor *models.Actor, input any) (any, error)

// Config enumerates everything an action needs up front.
type Config struct {
	Class   policy.Class
	Input   func() any
	Handler HandlerFunc
}

// Result is the uniform envelope returned to the client. Exactly one of
// Data, ServerError or ValidationErrors is populated.
type Result struct {
	Data             any                 `json:"data,omitempty"`
	ServerError      string              `json:"serverError,omitempty"`
	ValidationErrors map[string][]string `json:"validationErrors,omitempty"`

	kind apperr.Kind
	ok   bool
}

func (r Result) OK() bool {
	return r.ok
}

// Kind reports the failure kind; only meaningful when OK is false.
func (r Result) Kind() apperr.Kind {
	return r.kind
}

// Registry builds actions sharing one validator, translator and logger.
type Registry struct {
	validate *validator.Validate
	trans    ut.Translator
	log      zerolog.Logger
}

func NewRegistry(log zerolog.Logger) *Registry {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator("en")
	if err := entrans.RegisterDefaultTranslations(v, trans); err != nil {
		log.Warn().Err(err).Msg("failed to register validation translations")
	}

	return &Registry{
		validate: v,
		trans:    trans,
		log:      log.With().Str("component", "action").Logger(),
	}
}

type Action struct {
	class    policy.Class
	newInput func() any
	handler  HandlerFunc
	reg      *Registry
}

// Register creates an action from an explicit config.
func (r *Registry) Register(cfg Config) *Action {
	if cfg.Handler == nil {
		panic("action: config requires a handler")
	}
	return &Action{class: cfg.Class, newInput: cfg.Input, handler: cfg.Handler, reg: r}
}

func (r *Registry) Public(input func() any, h HandlerFunc) *Action {
	return r.Register(Config{Class: policy.ClassPublic, Input: input, Handler: h})
}

func (r *Registry) Read(input func() any, h HandlerFunc) *Action {
	return r.Register(Config{Class: policy.ClassRead, Input: input, Handler: h})
}

func (r *Registry) Write(input func() any, h HandlerFunc) *Action {
	return r.Register(Config{Class: policy.ClassWrite, Input: input, Handler: h})
}

func (r *Registry) Delete(input func() any, h HandlerFunc) *Action {
	return r.Register(Config{Class: policy.ClassDelete, Input: input, Handler: h})
}

func (r *Registry) Admin(input func() any, h HandlerFunc) *Action {
	return r.Register(Config{Class: policy.ClassAdmin, Input: input, Handler: h})
}

func (r *Registry) SuperAdmin(input func() any, h HandlerFunc) *Action {
	return r.Register(Config{Class: policy.ClassSuperAdmin, Input: input, Handler: h})
}

// Invoke runs the full pipeline. No handler error or panic escapes: every
// failure is normalized into the Result envelope.
func (a *Action) Invoke(ctx context.Context, actor *models.Actor, bind BindFunc) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			a.reg.log.Error().Interface("panic", rec).Msg("action handler panicked")
			res = Result{ServerError: genericErrorMessage, kind: apperr.KindUnexpected}
		}
	}()

	if a.class != policy.ClassPublic {
		if actor == nil {
			return Result{ServerError: "authentication required", kind: apperr.KindAuthRequired}
		}
		if !policy.Permits(actor.Role, a.class) {
			return Result{ServerError: "access denied", kind: apperr.KindForbidden}
		}
	}

	var input any
	if a.newInput != nil {
		input = a.newInput()
		if bind != nil {
			if err := bind(input); err != nil {
				return Result{
					ValidationErrors: map[string][]string{"_body": {"request payload could not be decoded"}},
					kind:             apperr.KindValidation,
				}
			}
		}
		if err := a.reg.validate.Struct(input); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				return Result{ValidationErrors: a.reg.fieldErrors(verrs), kind: apperr.KindValidation}
			}
			a.reg.log.Error().Err(err).Msg("input validation failed")
			return Result{ServerError: genericErrorMessage, kind: apperr.KindUnexpected}
		}
	}

	out, err := a.handler(ctx, actor, input)
	if err != nil {
		return a.reg.failure(err)
	}
	return Result{Data: out, ok: true}
}

func (r *Registry) fieldErrors(verrs validator.ValidationErrors) map[string][]string {
	translated := verrs.Translate(r.trans)
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		msg := translated[fe.Namespace()]
		if msg == "" {
			msg = "is invalid"
		}
		out[fe.Field()] = append(out[fe.Field()], msg)
	}
	return out
}

func (r *Registry) failure(err error) Result {
	kind := apperr.KindOf(err)
	if kind == apperr.KindUnexpected {
		r.log.Error().Err(err).Msg("action failed")
		return Result{ServerError: genericErrorMessage, kind: kind}
	}
	var e *apperr.Error
	errors.As(err, &e)
	return Result{ServerError: e.Message, kind: kind}
}
