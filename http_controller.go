package tokenauth

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"
)

// APIControllerRoutes are the mounted paths
type APIControllerRoutes struct {
	Login    string
	Register string
	Data     string
	Items    string
}

// APIController serves the JSON authentication and protected resource
// endpoints. Credential and token failures all produce the same generic
// unauthorized body so the API does not reveal which check failed.
type APIController struct {
	Debug      bool
	Logger     Logger
	Repo       RepositoryManager
	Auther     Authenticator
	Registrar  *RegisterUserHandler
	AuthScheme string
	ContextKey string
	Routes     *APIControllerRoutes
}

type APIControllerOption func(*APIController) *APIController

func NewAPIController(opts ...APIControllerOption) *APIController {
	c := &APIController{
		Logger:     defLogger{},
		AuthScheme: "Bearer",
		ContextKey: "user",
		Routes: &APIControllerRoutes{
			Login:    "/auth/login",
			Register: "/auth/register",
			Data:     "/api/data",
			Items:    "/api/items",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in api controller...")
	}

	if c.Auther == nil {
		panic("Missing Authenticator in api controller...")
	}

	if c.Registrar == nil {
		c.Registrar = NewRegisterUserHandler(c.Repo)
	}

	return c
}

func WithController(repo RepositoryManager, auther Authenticator) APIControllerOption {
	return func(c *APIController) *APIController {
		c.Repo = repo
		c.Auther = auther
		return c
	}
}

func WithControllerLogger(logger Logger) APIControllerOption {
	return func(c *APIController) *APIController {
		if logger != nil {
			c.Logger = logger
		}
		return c
	}
}

func WithControllerConfig(cfg Config) APIControllerOption {
	return func(c *APIController) *APIController {
		c.AuthScheme = cfg.GetAuthScheme()
		c.ContextKey = cfg.GetContextKey()
		return c
	}
}

func WithControllerDebug(debug bool) APIControllerOption {
	return func(c *APIController) *APIController {
		c.Debug = debug
		return c
	}
}

// RegisterAPIRoutes mounts the controller. The protected middleware guards
// every route under /api; the auth endpoints stay public.
func RegisterAPIRoutes[T any](app router.Router[T], protected router.MiddlewareFunc, opts ...APIControllerOption) *APIController {
	controller := NewAPIController(opts...)

	app.Post(controller.Routes.Login, controller.LoginPost).
		SetName("auth-login.post")

	app.Post(controller.Routes.Register, controller.RegistrationCreate).
		SetName("auth-register.post")

	app.Get(controller.Routes.Data, controller.DataIndex, protected).
		SetName("api-data.get")

	app.Get(controller.Routes.Items, controller.ItemsIndex, protected).
		SetName("api-items.get")

	app.Post(controller.Routes.Items, controller.ItemsCreate, protected).
		SetName("api-items.post")

	return controller
}

// LoginRequest payload
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func (a *APIController) LoginPost(ctx router.Context) error {
	payload := new(LoginRequest)

	if err := ctx.Bind(payload); err != nil {
		return ctx.JSON(router.StatusBadRequest, map[string]string{
			"error": "unable to parse request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return ctx.JSON(router.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	token, err := a.Auther.Login(ctx.Context(), payload.Username, payload.Password)
	if err != nil {
		if IsCredentialError(err) {
			return ctx.JSON(router.StatusUnauthorized, map[string]string{
				"error": "Invalid credentials",
			})
		}
		a.Logger.Error("Login error: %s", err)
		return ctx.JSON(router.StatusInternalServerError, map[string]string{
			"error": "internal error",
		})
	}

	return ctx.JSON(router.StatusOK, map[string]string{
		"token":     token,
		"tokenType": a.AuthScheme,
	})
}

func (a *APIController) RegistrationCreate(ctx router.Context) error {
	payload := new(RegisterUserMessage)

	if err := ctx.Bind(payload); err != nil {
		return ctx.JSON(router.StatusBadRequest, map[string]string{
			"error": "unable to parse request body",
		})
	}

	user, err := a.Registrar.Execute(ctx.Context(), *payload)
	if err != nil {
		if IsConflictError(err) {
			return ctx.JSON(router.StatusConflict, map[string]string{
				"error": "already exists",
			})
		}

		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) && richErr.Category == goerrors.CategoryValidation {
			return ctx.JSON(router.StatusBadRequest, map[string]string{
				"error": richErr.Message,
			})
		}

		a.Logger.Error("Registration error: %s", err)
		return ctx.JSON(router.StatusInternalServerError, map[string]string{
			"error": "internal error",
		})
	}

	return ctx.JSON(router.StatusCreated, map[string]any{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func (a *APIController) DataIndex(ctx router.Context) error {
	return ctx.JSON(router.StatusOK, map[string]any{
		"currentUser": a.subject(ctx),
		"items": []map[string]any{
			{"id": 1, "title": "Hello"},
			{"id": 2, "title": "World"},
		},
	})
}

// ItemCreateRequest payload
type ItemCreateRequest struct {
	Title string `form:"title" json:"title"`
}

// Validate will run validation rules
func (r ItemCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
	)
}

// ItemResponse is the display form of an item: the title is HTML escaped on
// the way out, the stored record keeps the raw value.
type ItemResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func (a *APIController) ItemsCreate(ctx router.Context) error {
	payload := new(ItemCreateRequest)

	if err := ctx.Bind(payload); err != nil {
		return ctx.JSON(router.StatusBadRequest, map[string]string{
			"error": "unable to parse request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return ctx.JSON(router.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	if a.Debug {
		fmt.Println(print.MaybePrettyJSON(payload))
	}

	subject := a.subject(ctx)

	item, err := a.Repo.Items().Create(ctx.Context(), &Item{
		Title:     payload.Title,
		CreatedBy: subject,
	})
	if err != nil {
		a.Logger.Error("Item create error: %s", err)
		return ctx.JSON(router.StatusInternalServerError, map[string]string{
			"error": "internal error",
		})
	}

	return ctx.JSON(router.StatusCreated, map[string]any{
		"createdBy": subject,
		"item": ItemResponse{
			ID:    item.ID,
			Title: ForHTML(item.Title),
		},
	})
}

func (a *APIController) ItemsIndex(ctx router.Context) error {
	records, err := a.Repo.Items().List(ctx.Context())
	if err != nil {
		a.Logger.Error("Item list error: %s", err)
		return ctx.JSON(router.StatusInternalServerError, map[string]string{
			"error": "internal error",
		})
	}

	out := make([]ItemResponse, 0, len(records))
	for _, item := range records {
		out = append(out, ItemResponse{
			ID:    item.ID,
			Title: ForHTML(item.Title),
		})
	}

	return ctx.JSON(router.StatusOK, out)
}

func (a *APIController) subject(ctx router.Context) string {
	subject, _ := ctx.Locals(a.ContextKey).(string)
	return subject
}
