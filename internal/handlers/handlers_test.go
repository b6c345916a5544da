package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dealflow/apiserver/internal/services"
	"github.com/dealflow/apiserver/internal/store"
	"github.com/dealflow/apiserver/types"
	"github.com/go-chi/chi/v5"
)

type fakeUserRepo struct {
	users     map[string]types.User
	nextID    int
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]types.User{}}
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (types.User, error) {
	user, ok := f.users[username]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	if f.createErr != nil {
		return types.User{}, f.createErr
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.Username] = user
	return user, nil
}

type fakeCompanyRepo struct {
	companies []types.Company
	nextID    int
	createErr error
	listErr   error
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{}
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id int) (types.Company, error) {
	for _, company := range f.companies {
		if company.ID == id {
			return company, nil
		}
	}
	return types.Company{}, store.ErrNotFound
}

func (f *fakeCompanyRepo) List(_ context.Context) ([]types.Company, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]types.Company, len(f.companies))
	copy(out, f.companies)
	return out, nil
}

func (f *fakeCompanyRepo) Create(_ context.Context, company types.Company) (types.Company, error) {
	if f.createErr != nil {
		return types.Company{}, f.createErr
	}
	f.nextID++
	company.ID = f.nextID
	f.companies = append(f.companies, company)
	return company, nil
}

// newAPIRouter mirrors the server's /api route layout over fake repositories.
func newAPIRouter(userRepo services.UserRepository, companyRepo services.CompanyRepository) *chi.Mux {
	validate := NewValidator()
	userService := services.NewUserService(userRepo)
	companyService := services.NewCompanyService(companyRepo)

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		AuthRouter(r, userService, validate)
		r.Route("/companies", func(r chi.Router) {
			CompanyRouter(r, companyService, validate)
		})
	})
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	if err := json.NewDecoder(recorder.Body).Decode(&value); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return value
}
