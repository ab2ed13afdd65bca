package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/weddingcard/weddingcard-back/internal/config"
	"github.com/weddingcard/weddingcard-back/internal/models"
	"github.com/weddingcard/weddingcard-back/internal/service"
)

type (
	AuthReq struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	AuthResp struct {
		SessionID string `json:"session_id"`
		UserID    string `json:"user_id"`
		Username  string `json:"username"`
		Success   bool   `json:"success"`
	}

	ProfileResp struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		CreatedAt time.Time `json:"created_at"`
	}

	RSVPListResp struct {
		Success    bool          `json:"success"`
		RSVPs      []models.RSVP `json:"rsvps"`
		TotalCount int           `json:"total_count"`
	}

	GuestbookListResp struct {
		Success    bool                      `json:"success"`
		Messages   []models.GuestbookMessage `json:"messages"`
		TotalCount int                       `json:"total_count"`
	}

	CustomValidator struct {
		validator *validator.Validate
	}

	HTTPServer struct {
		accounts *service.Accounts
		sessions *service.SessionManager
		weddings *service.Weddings
		resolver *service.Resolver
		entries  *service.Entries
	}
)

func NewHTTPServer(lc fx.Lifecycle, cfg *config.Config, accounts *service.Accounts, sessions *service.SessionManager, weddings *service.Weddings, resolver *service.Resolver, entries *service.Entries, logger *zap.SugaredLogger) *HTTPServer {
	e := echo.New()

	instance := HTTPServer{
		accounts: accounts,
		sessions: sessions,
		weddings: weddings,
		resolver: resolver,
		entries:  entries,
	}

	api := e.Group("/api")

	api.POST("/auth/register", instance.Register)
	api.POST("/auth/login", instance.Login)

	api.POST("/wedding", instance.WeddingCreate)
	api.PUT("/wedding", instance.WeddingUpdate)
	api.GET("/wedding", instance.WeddingGet)
	api.PUT("/wedding/party", instance.WeddingPartyUpdate)
	api.GET("/wedding/public/:wedding_id", instance.WeddingPublic)
	api.GET("/wedding/share/:shareable_id", instance.WeddingShare)

	api.GET("/profile", instance.Profile)

	api.POST("/rsvp", instance.RSVPSubmit)
	api.GET("/rsvp/shareable/:shareable_id", instance.RSVPsByShareable)
	api.GET("/rsvp/:wedding_id", instance.RSVPsByWedding)

	api.POST("/guestbook", instance.GuestbookSubmit)
	api.GET("/guestbook/shareable/:shareable_id", instance.GuestbookByShareable)
	api.GET("/guestbook/:wedding_id", instance.GuestbookByWedding)

	api.GET("/test", instance.Test)

	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	echo.NotFoundHandler = func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				listen := cfg.Host + ":" + cfg.Port
				if err := e.Start(listen); err != nil && err != http.ErrServerClosed {
					e.Logger.Fatal("shutting down the server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server.")
			sessions.Reset()
			return e.Shutdown(ctx)
		},
	})

	return &instance
}

func (s *HTTPServer) Register(c echo.Context) error {
	req := AuthReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := s.accounts.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, AuthResp{
		SessionID: result.SessionID,
		UserID:    result.UserID,
		Username:  result.Username,
		Success:   true,
	})
}

func (s *HTTPServer) Login(c echo.Context) error {
	req := AuthReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := s.accounts.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, AuthResp{
		SessionID: result.SessionID,
		UserID:    result.UserID,
		Username:  result.Username,
		Success:   true,
	})
}

func (s *HTTPServer) WeddingCreate(c echo.Context) error {
	body, err := BindBody(c)
	if err != nil {
		return err
	}

	user, err := s.currentUser(c, bodySessionID(body))
	if err != nil {
		return err
	}

	doc, err := s.weddings.Create(c.Request().Context(), user.ID, body)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (s *HTTPServer) WeddingUpdate(c echo.Context) error {
	body, err := BindBody(c)
	if err != nil {
		return err
	}

	user, err := s.currentUser(c, bodySessionID(body))
	if err != nil {
		return err
	}

	doc, err := s.weddings.Update(c.Request().Context(), user.ID, body)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (s *HTTPServer) WeddingGet(c echo.Context) error {
	user, err := s.currentUser(c, c.QueryParam("session_id"))
	if err != nil {
		return err
	}

	doc, err := s.weddings.ByOwner(c.Request().Context(), user.ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (s *HTTPServer) WeddingPartyUpdate(c echo.Context) error {
	body, err := BindBody(c)
	if err != nil {
		return err
	}

	user, err := s.currentUser(c, bodySessionID(body))
	if err != nil {
		return err
	}

	doc, err := s.weddings.UpdateParty(c.Request().Context(), user.ID, body)
	if err != nil {
		return mapServiceError(err)
	}

	resp := struct {
		Success     bool        `json:"success"`
		WeddingData interface{} `json:"wedding_data"`
	}{
		Success:     true,
		WeddingData: doc,
	}
	return c.JSON(http.StatusOK, &resp)
}

func (s *HTTPServer) WeddingPublic(c echo.Context) error {
	id, err := GetParam(c, "wedding_id")
	if err != nil {
		return err
	}

	doc, err := s.resolver.ByID(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (s *HTTPServer) WeddingShare(c echo.Context) error {
	token, err := GetParam(c, "shareable_id")
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, s.resolver.ByShareable(c.Request().Context(), token))
}

func (s *HTTPServer) Profile(c echo.Context) error {
	user, err := s.currentUser(c, c.QueryParam("session_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ProfileResp{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}

func (s *HTTPServer) RSVPSubmit(c echo.Context) error {
	body, err := BindBody(c)
	if err != nil {
		return err
	}

	rsvp, err := s.entries.SubmitRSVP(c.Request().Context(), body)
	if err != nil {
		return mapServiceError(err)
	}

	resp := struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		RSVPID  string `json:"rsvp_id"`
	}{
		Success: true,
		Message: "RSVP submitted successfully",
		RSVPID:  rsvp.ID,
	}
	return c.JSON(http.StatusOK, &resp)
}

func (s *HTTPServer) RSVPsByWedding(c echo.Context) error {
	id, err := GetParam(c, "wedding_id")
	if err != nil {
		return err
	}

	rsvps, err := s.entries.RSVPsByWedding(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, RSVPListResp{
		Success:    true,
		RSVPs:      rsvps,
		TotalCount: len(rsvps),
	})
}

func (s *HTTPServer) RSVPsByShareable(c echo.Context) error {
	token, err := GetParam(c, "shareable_id")
	if err != nil {
		return err
	}

	rsvps, err := s.entries.RSVPsByShareable(c.Request().Context(), token)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, RSVPListResp{
		Success:    true,
		RSVPs:      rsvps,
		TotalCount: len(rsvps),
	})
}

func (s *HTTPServer) GuestbookSubmit(c echo.Context) error {
	body, err := BindBody(c)
	if err != nil {
		return err
	}

	msg, err := s.entries.SubmitGuestbook(c.Request().Context(), body)
	if err != nil {
		return mapServiceError(err)
	}

	resp := struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		MessageID string `json:"message_id"`
	}{
		Success:   true,
		Message:   "Guestbook message added successfully",
		MessageID: msg.ID,
	}
	return c.JSON(http.StatusOK, &resp)
}

func (s *HTTPServer) GuestbookByWedding(c echo.Context) error {
	id, err := GetParam(c, "wedding_id")
	if err != nil {
		return err
	}

	messages, err := s.entries.GuestbookByWedding(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, GuestbookListResp{
		Success:    true,
		Messages:   messages,
		TotalCount: len(messages),
	})
}

func (s *HTTPServer) GuestbookByShareable(c echo.Context) error {
	token, err := GetParam(c, "shareable_id")
	if err != nil {
		return err
	}

	messages, err := s.entries.GuestbookByShareable(c.Request().Context(), token)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, GuestbookListResp{
		Success:    true,
		Messages:   messages,
		TotalCount: len(messages),
	})
}

func (s *HTTPServer) Test(c echo.Context) error {
	resp := struct {
		Status    string    `json:"status"`
		Message   string    `json:"message"`
		Timestamp time.Time `json:"timestamp"`
	}{
		Status:    "ok",
		Message:   "Backend is working",
		Timestamp: time.Now().UTC(),
	}
	return c.JSON(http.StatusOK, &resp)
}

func (s *HTTPServer) currentUser(c echo.Context, sessionID string) (*models.User, error) {
	user, err := s.sessions.Validate(c.Request().Context(), sessionID)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return user, nil
}

////////

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func BindAndValidate(c echo.Context, v interface{}) error {
	var err error
	if err = c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// BindBody reads the free-form card and entry payloads. The editors send
// open documents, so there is no struct to bind to.
func BindBody(c echo.Context) (map[string]interface{}, error) {
	body := map[string]interface{}{}
	if err := c.Bind(&body); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return body, nil
}

func GetParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if value == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid path param '"+name+"'")
	}
	return value, nil
}

func bodySessionID(body map[string]interface{}) string {
	sessionID, _ := body["session_id"].(string)
	return sessionID
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}
