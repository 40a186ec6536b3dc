package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmstay/farmstay-server/internal/api/testutils"
	"github.com/farmstay/farmstay-server/internal/models"
)

func TestSignup(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	// Test case 1: Successful signup
	signupReq := models.SignUpRequest{
		Email:    "newuser@example.com",
		Password: "Password123",
		Name:     "New User",
		Role:     "customer",
	}

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/auth/signup",
		signupReq,
		nil,
	)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.AuthResponse
	testutils.DecodeResponse(t, w, &resp)
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "newuser@example.com", resp.User.Email)

	// Test case 2: Duplicate email
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/auth/signup",
		signupReq,
		nil,
	)

	assert.Equal(t, http.StatusConflict, w.Code)

	// Test case 3: Invalid request (missing required fields)
	invalidReq := models.SignUpRequest{
		Email: "invalid@example.com",
		// Missing password, name and role
	}

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/auth/signup",
		invalidReq,
		nil,
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Test case 4: Role outside customer/owner is rejected
	badRoleReq := models.SignUpRequest{
		Email:    "admin@example.com",
		Password: "Password123",
		Name:     "Admin",
		Role:     "admin",
	}

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/auth/signup",
		badRoleReq,
		nil,
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	// Test case 1: Successful login with a seed account
	loginReq := models.LoginRequest{
		Email:    testutils.CustomerEmail,
		Password: testutils.CustomerPassword,
	}

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/auth/login",
		loginReq,
		nil,
	)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.AuthResponse
	testutils.DecodeResponse(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, testutils.CustomerID, resp.User.ID)

	// Test case 2: Wrong password
	invalidLoginReq := models.LoginRequest{
		Email:    testutils.CustomerEmail,
		Password: "wrongpassword",
	}

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/auth/login",
		invalidLoginReq,
		nil,
	)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var errResp models.ErrorResponse
	testutils.DecodeResponse(t, w, &errResp)
	assert.Equal(t, "INVALID_CREDENTIALS", errResp.Code)

	// Test case 3: Unknown email yields the same error code
	nonExistentUserReq := models.LoginRequest{
		Email:    "nonexistent@example.com",
		Password: testutils.CustomerPassword,
	}

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/auth/login",
		nonExistentUserReq,
		nil,
	)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	testutils.DecodeResponse(t, w, &errResp)
	assert.Equal(t, "INVALID_CREDENTIALS", errResp.Code)
}

func TestSessionAndLogout(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	// No one logged in yet
	w := testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/auth/session", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var sessionResp models.SessionResponse
	testutils.DecodeResponse(t, w, &sessionResp)
	assert.Nil(t, sessionResp.User)

	// Login, then the session reflects the identity
	loginReq := models.LoginRequest{
		Email:    testutils.OwnerEmail,
		Password: testutils.OwnerPassword,
	}
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/auth/login", loginReq, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/auth/session", nil, nil)
	testutils.DecodeResponse(t, w, &sessionResp)
	require.NotNil(t, sessionResp.User)
	assert.Equal(t, testutils.OwnerID, sessionResp.User.ID)

	// Logout clears it; repeating is harmless
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/auth/logout", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/auth/logout", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/auth/session", nil, nil)
	testutils.DecodeResponse(t, w, &sessionResp)
	assert.Nil(t, sessionResp.User)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	// No Authorization header
	w := testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/bookings", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Malformed header
	w = testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/bookings", nil,
		map[string]string{"Authorization": "not-a-bearer-token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	w = testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/bookings", nil,
		testutils.AuthHeaders("garbage.token.value"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token
	w = testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/bookings", nil,
		testutils.AuthHeaders(testCtx.CustomerToken))
	assert.Equal(t, http.StatusOK, w.Code)
}
