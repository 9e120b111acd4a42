package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fundflow/internal/adapter/auth"
	"fundflow/internal/adapter/export"
	"fundflow/internal/adapter/memory"
	"fundflow/internal/adapter/payment"
	"fundflow/internal/adapter/realtime"
	"fundflow/internal/adapter/usecase"
	"fundflow/internal/config/configs"
	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
	"fundflow/internal/metrics"
)

type testServer struct {
	t        *testing.T
	handler  *Handler
	accounts *usecase.AccountUseCase
	payments *payment.Sandbox
}

func newTestServer(t *testing.T, opts ...Option) *testServer {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repositories()
	accounts := usecase.NewAccountUseCase(repos.Accounts, auth.NewBcryptHasher(bcrypt.MinCost), auth.NewJWTIssuer("http-test-secret-value", time.Hour))
	sandbox := payment.NewSandbox()
	svc := Services{
		Accounts:    accounts,
		Campaigns:   usecase.NewCampaignUseCase(repos.Campaigns),
		Investments: usecase.NewInvestmentUseCase(repos.Campaigns, repos.Ledger, sandbox),
		Chat:        usecase.NewChatUseCase(repos.Accounts, repos.Conversations, nil),
		Admin:       usecase.NewAdminUseCase(repos, export.NewXLSX()),
	}
	cfg := configs.HTTP{CORSOrigins: []string{"*"}, RequestTimeout: 5 * time.Second}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &testServer{
		t:        t,
		handler:  NewHandler(svc, cfg, logger, opts...),
		accounts: accounts,
		payments: sandbox,
	}
}

// do sends a request and decodes a JSON response into out when out is
// non-nil. It returns the recorder for status and header checks.
func (s *testServer) do(method, path, token string, body, out any) *httptest.ResponseRecorder {
	s.t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.Router().ServeHTTP(rec, req)
	if out != nil {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec
}

type session struct {
	Token string `json:"token"`
	User  struct {
		ID   uuid.UUID   `json:"id"`
		Role domain.Role `json:"role"`
	} `json:"user"`
}

func (s *testServer) register(role domain.Role) session {
	s.t.Helper()
	var sess session
	rec := s.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     string(role) + " user",
		"email":    uuid.NewString() + "@example.com",
		"password": "password123",
		"role":     role,
	}, &sess)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return sess
}

func (s *testServer) admin() session {
	s.t.Helper()
	email := uuid.NewString() + "@example.com"
	_, err := s.accounts.CreateAdmin(context.Background(), "Root", email, "password123")
	require.NoError(s.t, err)
	var sess session
	rec := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": "password123"}, &sess)
	require.Equal(s.t, http.StatusOK, rec.Code)
	return sess
}

type campaignResp struct {
	ID           uuid.UUID             `json:"id"`
	Status       domain.CampaignStatus `json:"status"`
	RaisedAmount int64                 `json:"raisedAmount"`
	Backers      []struct {
		Amount int64 `json:"amount"`
	} `json:"backers"`
}

func (s *testServer) campaign(token string, goal int64) campaignResp {
	s.t.Helper()
	var c campaignResp
	rec := s.do(http.MethodPost, "/api/campaigns", token, campaignBody(goal), &c)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return c
}

func campaignBody(goal int64) map[string]any {
	return map[string]any{
		"title":       "Open source telescope",
		"description": "A telescope anyone can build",
		"goalAmount":  goal,
		"deadline":    time.Now().Add(30 * 24 * time.Hour).Format(time.RFC3339),
		"category":    domain.CategoryTechnology,
	}
}

func (s *testServer) invest(token string, campaignID uuid.UUID, amount int64) string {
	s.t.Helper()
	var intent port.IntentResp
	rec := s.do(http.MethodPost, "/api/investments/create-payment-intent", token,
		map[string]any{"campaignId": campaignID, "amount": amount}, &intent)
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotEmpty(s.t, intent.PaymentIntentID)
	return intent.PaymentIntentID
}

func confirmBody(intentID string, campaignID uuid.UUID, amount int64) map[string]any {
	return map[string]any{"paymentIntentId": intentID, "campaignId": campaignID, "amount": amount}
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)
	email := "Founder@Example.com"
	body := map[string]any{"name": "Founder", "email": email, "password": "password123", "role": "startup"}

	var sess session
	rec := s.do(http.MethodPost, "/api/auth/register", "", body, &sess)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, domain.RoleStartup, sess.User.Role)

	var eb errorBody
	rec = s.do(http.MethodPost, "/api/auth/register", "", body, &eb)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", eb.Error)

	rec = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": "wrong-password"}, &eb)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthenticated", eb.Error)

	var me struct {
		ID    uuid.UUID `json:"id"`
		Email string    `json:"email"`
		Bio   string    `json:"bio"`
	}
	rec = s.do(http.MethodGet, "/api/auth/me", sess.Token, nil, &me)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sess.User.ID, me.ID)
	assert.Equal(t, "founder@example.com", me.Email)

	rec = s.do(http.MethodPut, "/api/auth/profile", sess.Token, map[string]string{"bio": "Builds telescopes"}, &me)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Builds telescopes", me.Bio)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"bad email", map[string]any{"name": "A", "email": "nope", "password": "password123", "role": "investor"}},
		{"admin role", map[string]any{"name": "A", "email": "a@example.com", "password": "password123", "role": "admin"}},
		{"missing name", map[string]any{"email": "a@example.com", "password": "password123", "role": "investor"}},
		{"short password", map[string]any{"name": "A", "email": "a@example.com", "password": "123", "role": "investor"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var eb errorBody
			rec := s.do(http.MethodPost, "/api/auth/register", "", tt.body, &eb)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "validation_failed", eb.Error)
			assert.NotEmpty(t, eb.Message)
		})
	}
}

func TestAuthenticateMiddleware(t *testing.T) {
	s := newTestServer(t)

	var eb errorBody
	rec := s.do(http.MethodGet, "/api/auth/me", "", nil, &eb)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthenticated", eb.Error)

	rec = s.do(http.MethodGet, "/api/auth/me", "not-a-token", nil, &eb)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	admin := s.admin()
	user := s.register(domain.RoleInvestor)
	rec = s.do(http.MethodPut, "/api/admin/users/"+user.User.ID.String()+"/status", admin.Token, map[string]bool{"isActive": false}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/auth/me", user.Token, nil, &eb)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden", eb.Error)
}

func TestCampaignRoutes(t *testing.T) {
	s := newTestServer(t)
	startup := s.register(domain.RoleStartup)
	investor := s.register(domain.RoleInvestor)

	rec := s.do(http.MethodPost, "/api/campaigns", investor.Token, campaignBody(500_000), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	active := s.campaign(startup.Token, 500_000)
	draftBody := campaignBody(500_000)
	draftBody["status"] = "draft"
	rec = s.do(http.MethodPost, "/api/campaigns", startup.Token, draftBody, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var page struct {
		Campaigns  []campaignResp    `json:"campaigns"`
		Pagination domain.Pagination `json:"pagination"`
	}
	rec = s.do(http.MethodGet, "/api/campaigns", "", nil, &page)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, page.Campaigns, 1)
	assert.Equal(t, active.ID, page.Campaigns[0].ID)
	assert.Equal(t, 1, page.Pagination.Total)

	rec = s.do(http.MethodGet, "/api/campaigns?status=draft", "", nil, &page)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, page.Campaigns, 1)
	assert.Equal(t, domain.StatusDraft, page.Campaigns[0].Status)

	rec = s.do(http.MethodGet, "/api/campaigns?page=abc", "", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var tooFar errorBody
	rec = s.do(http.MethodGet, "/api/campaigns?page=92233720368547760&limit=100", "", nil, &tooFar)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_failed", tooFar.Error)
	assert.Contains(t, tooFar.Message, "page")

	rec = s.do(http.MethodGet, "/api/campaigns?page=2", "", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"campaigns":[]`)

	rec = s.do(http.MethodGet, "/api/campaigns/not-a-uuid", "", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/campaigns/"+uuid.NewString(), "", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var list []campaignResp
	rec = s.do(http.MethodGet, "/api/campaigns/user/"+startup.User.ID.String(), "", nil, &list)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, list, 2)

	other := s.register(domain.RoleStartup)
	rec = s.do(http.MethodPut, "/api/campaigns/"+active.ID.String(), other.Token, map[string]string{"title": "Mine now"}, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var updated struct {
		Title string `json:"title"`
	}
	rec = s.do(http.MethodPut, "/api/campaigns/"+active.ID.String(), startup.Token, map[string]string{"title": "Bigger telescope"}, &updated)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bigger telescope", updated.Title)

	var eb errorBody
	rec = s.do(http.MethodPut, "/api/campaigns/"+active.ID.String(), startup.Token, map[string]string{"status": "draft"}, &eb)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_failed", eb.Error)

	rec = s.do(http.MethodPost, "/api/campaigns/"+active.ID.String()+"/updates", startup.Token,
		map[string]string{"title": "Lens ordered", "content": "The main mirror ships next week"}, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var details struct {
		Updates []struct {
			Title string `json:"title"`
		} `json:"updates"`
	}
	rec = s.do(http.MethodGet, "/api/campaigns/"+active.ID.String(), "", nil, &details)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, details.Updates, 1)
	assert.Equal(t, "Lens ordered", details.Updates[0].Title)

	rec = s.do(http.MethodDelete, "/api/campaigns/"+active.ID.String(), startup.Token, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(http.MethodGet, "/api/campaigns/"+active.ID.String(), "", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFundingFlow(t *testing.T) {
	s := newTestServer(t)
	startup := s.register(domain.RoleStartup)
	investor := s.register(domain.RoleInvestor)
	c := s.campaign(startup.Token, 1_000_000)

	first := s.invest(investor.Token, c.ID, 300_000)
	rec := s.do(http.MethodPost, "/api/investments/confirm-payment", investor.Token, confirmBody(first, c.ID, 300_000), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var eb errorBody
	rec = s.do(http.MethodPost, "/api/investments/confirm-payment", investor.Token, confirmBody(first, c.ID, 300_000), &eb)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "duplicate_payment", eb.Error)

	second := s.invest(investor.Token, c.ID, 700_000)
	rec = s.do(http.MethodPost, "/api/investments/confirm-payment", investor.Token, confirmBody(second, c.ID, 700_000), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got campaignResp
	rec = s.do(http.MethodGet, "/api/campaigns/"+c.ID.String(), "", nil, &got)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1_000_000, got.RaisedAmount)
	require.Len(t, got.Backers, 1)
	assert.EqualValues(t, 1_000_000, got.Backers[0].Amount)

	var mine []struct {
		Amount int64 `json:"amount"`
	}
	rec = s.do(http.MethodGet, "/api/investments/user/"+investor.User.ID.String(), investor.Token, nil, &mine)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, mine, 2)

	rec = s.do(http.MethodGet, "/api/investments/user/"+investor.User.ID.String(), startup.Token, nil, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/api/investments", investor.Token, nil, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = s.do(http.MethodGet, "/api/investments", s.admin().Token, nil, &mine)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, mine, 2)

	var stats domain.CreatorStats
	rec = s.do(http.MethodGet, "/api/campaigns/stats/"+startup.User.ID.String(), "", nil, &stats)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 100, stats.SuccessRate)
	assert.EqualValues(t, 1_000_000, stats.TotalRaised)
}

func TestConfirmPaymentNotCompleted(t *testing.T) {
	s := newTestServer(t)
	startup := s.register(domain.RoleStartup)
	investor := s.register(domain.RoleInvestor)
	c := s.campaign(startup.Token, 1_000_000)

	id := s.invest(investor.Token, c.ID, 5_000)
	require.NoError(t, s.payments.SetStatus(id, domain.PaymentProcessing))

	var eb errorBody
	rec := s.do(http.MethodPost, "/api/investments/confirm-payment", investor.Token, confirmBody(id, c.ID, 5_000), &eb)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, "payment_not_completed", eb.Error)

	rec = s.do(http.MethodPost, "/api/investments/create-payment-intent", startup.Token,
		map[string]any{"campaignId": c.ID, "amount": 5_000}, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestChatRoutes(t *testing.T) {
	s := newTestServer(t)
	startup := s.register(domain.RoleStartup)
	investor := s.register(domain.RoleInvestor)
	stranger := s.register(domain.RoleInvestor)

	var conv struct {
		ID uuid.UUID `json:"id"`
	}
	rec := s.do(http.MethodPost, "/api/chat/create", investor.Token, map[string]any{"participantId": startup.User.ID}, &conv)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var again struct {
		ID uuid.UUID `json:"id"`
	}
	rec = s.do(http.MethodPost, "/api/chat/create", startup.Token, map[string]any{"participantId": investor.User.ID}, &again)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, conv.ID, again.ID)

	base := "/api/chat/" + conv.ID.String()
	for _, text := range []string{"Hello", "Any traction numbers?"} {
		rec = s.do(http.MethodPost, base+"/messages", investor.Token, map[string]string{"content": text}, nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	var eb errorBody
	rec = s.do(http.MethodPost, base+"/messages", stranger.Token, map[string]string{"content": "let me in"}, &eb)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden", eb.Error)

	rec = s.do(http.MethodPost, base+"/messages", investor.Token, map[string]string{"content": ""}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var msgs []struct {
		Seq     int64  `json:"seq"`
		Content string `json:"content"`
		Read    bool   `json:"read"`
	}
	rec = s.do(http.MethodGet, base+"/messages?afterSeq=1", startup.Token, nil, &msgs)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, msgs, 1)
	assert.EqualValues(t, 2, msgs[0].Seq)
	assert.Equal(t, "Any traction numbers?", msgs[0].Content)

	rec = s.do(http.MethodGet, base+"/messages?afterSeq=x", startup.Token, nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var marked map[string]int64
	rec = s.do(http.MethodPut, base+"/read", startup.Token, nil, &marked)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, marked["marked"])

	var convs []struct {
		ID           uuid.UUID `json:"id"`
		MessageCount int64     `json:"messageCount"`
	}
	rec = s.do(http.MethodGet, "/api/chat", startup.Token, nil, &convs)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, convs, 1)
	assert.EqualValues(t, 2, convs[0].MessageCount)

	rec = s.do(http.MethodGet, base, stranger.Token, nil, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t)
	admin := s.admin()
	startup := s.register(domain.RoleStartup)
	investor := s.register(domain.RoleInvestor)
	c := s.campaign(startup.Token, 1_000_000)
	id := s.invest(investor.Token, c.ID, 20_000)
	rec := s.do(http.MethodPost, "/api/investments/confirm-payment", investor.Token, confirmBody(id, c.ID, 20_000), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/admin/stats", startup.Token, nil, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var ov port.AdminOverview
	rec = s.do(http.MethodGet, "/api/admin/stats", admin.Token, nil, &ov)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, ov.Stats.TotalUsers)
	assert.Equal(t, 1, ov.Stats.TotalInvestments)
	assert.EqualValues(t, 20_000, ov.Stats.TotalFunded)

	var users userPage
	rec = s.do(http.MethodGet, "/api/admin/users?limit=2", admin.Token, nil, &users)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, users.Users, 2)
	assert.Equal(t, 2, users.Pagination.Pages)

	rec = s.do(http.MethodGet, "/api/admin/users?page=92233720368547760", admin.Token, nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	status := "/api/admin/campaigns/" + c.ID.String() + "/status"
	var got campaignResp
	rec = s.do(http.MethodPut, status, admin.Token, map[string]string{"status": "suspended"}, &got)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.StatusSuspended, got.Status)

	rec = s.do(http.MethodPut, status, admin.Token, map[string]string{"status": "completed"}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodPut, status, admin.Token, map[string]string{"status": "archived"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var campaigns struct {
		Campaigns []campaignResp `json:"campaigns"`
	}
	rec = s.do(http.MethodGet, "/api/admin/campaigns", admin.Token, nil, &campaigns)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, campaigns.Campaigns, 1)
	assert.Equal(t, domain.StatusSuspended, campaigns.Campaigns[0].Status)

	rec = s.do(http.MethodGet, "/api/admin/investments/export", admin.Token, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.NewXLSX().ContentType(), rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.NotZero(t, rec.Body.Len())

	rec = s.do(http.MethodPut, "/api/admin/users/"+admin.User.ID.String()+"/status", admin.Token, map[string]bool{"isActive": false}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPut, "/api/admin/users/"+investor.User.ID.String()+"/status", admin.Token, map[string]any{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicStats(t *testing.T) {
	s := newTestServer(t)
	startup := s.register(domain.RoleStartup)
	s.campaign(startup.Token, 1_000_000)

	var st domain.PlatformStats
	rec := s.do(http.MethodGet, "/api/stats", "", nil, &st)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, st.TotalCampaigns)
	assert.Equal(t, 1, st.TotalUsers)
	assert.Zero(t, st.SuccessRate)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: no token", domain.ErrUnauthenticated), http.StatusUnauthorized},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("%w: campaign", domain.ErrNotFound), http.StatusNotFound},
		{domain.ErrDuplicatePayment, http.StatusConflict},
		{domain.Validationf("bad"), http.StatusBadRequest},
		{domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{domain.ErrPaymentNotCompleted, http.StatusPaymentRequired},
		{fmt.Errorf("%w: card declined", port.ErrPaymentProvider), http.StatusBadGateway},
		{fmt.Errorf("get intent: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusOf(tt.err), tt.err.Error())
	}
}

func TestInternalErrorsAreMasked(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	s.handler.writeError(rec, req, errors.New("pq: connection refused to 10.0.0.3"))

	var eb errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eb))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", eb.Error)
	assert.Equal(t, "internal error", eb.Message)
}

func TestOperationalEndpoints(t *testing.T) {
	healthy := true
	m := metrics.New()
	s := newTestServer(t,
		WithMetrics(m),
		WithHealth(func(context.Context) error {
			if healthy {
				return nil
			}
			return errors.New("db down")
		}),
	)

	rec := s.do(http.MethodGet, "/healthz", "", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	healthy = false
	rec = s.do(http.MethodGet, "/healthz", "", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	s.do(http.MethodGet, "/api/stats", "", nil, nil)
	rec = s.do(http.MethodGet, "/metrics", "", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fundflow_http_requests_total{method="GET",route="/api/stats",status="200"}`)

	rec = s.do(http.MethodGet, "/ws", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateLimit(t *testing.T) {
	store := memory.NewStore()
	repos := store.Repositories()
	svc := Services{Admin: usecase.NewAdminUseCase(repos, export.NewXLSX())}
	cfg := configs.HTTP{CORSOrigins: []string{"*"}, RateLimit: 2, RateWindow: time.Minute}
	h := NewHandler(svc, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	codes := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestWebsocketHandshake(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := newTestServer(t, func(h *Handler) {
		hub := realtime.NewHub(nil, logger)
		h.gateway = realtime.NewGateway(hub, h.svc.Chat, configs.Realtime{SendBuffer: 8}, []string{"*"}, logger)
	})
	user := s.register(domain.RoleInvestor)

	srv := httptest.NewServer(s.handler.Router())
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL+"?token="+user.Token, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	defer conn.Close()

	header := http.Header{"Authorization": []string{"Bearer " + user.Token}}
	conn2, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	defer conn2.Close()

	require.NoError(t, conn2.WriteJSON(map[string]string{"type": "join-conversation", "conversationId": uuid.NewString()}))
	require.NoError(t, conn2.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev struct {
		Type  string `json:"type"`
		Error struct {
			Kind string `json:"kind"`
		} `json:"error"`
	}
	require.NoError(t, conn2.ReadJSON(&ev))
	assert.Equal(t, "error", ev.Type)
	assert.Equal(t, "not_found", ev.Error.Kind)
}
