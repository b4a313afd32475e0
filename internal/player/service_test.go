package player

import (
	"os"
	"testing"

	"github.com/ddiazp/LuckySevens/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// mockGenerateJWT is a helper to override GenerateJWT in tests
var mockGenerateJWT func(id uint, role string) (string, error)

func TestMain(m *testing.M) {
	orig := GenerateJWT
	GenerateJWT = func(id uint, role string) (string, error) {
		if mockGenerateJWT != nil {
			return mockGenerateJWT(id, role)
		}
		return orig(id, role)
	}
	code := m.Run()
	GenerateJWT = orig
	os.Exit(code)
}

func TestPlayerService_Register(t *testing.T) {
	mockRepo := &MockPlayerRepository{}
	service := NewPlayerService(mockRepo)

	mockRepo.On("FindByEmail", "alice@example.com").Return(nil, nil)
	mockRepo.On("FindByName", "alice").Return(nil, nil)
	mockRepo.On("Create", mock.AnythingOfType("*player.Player")).Return(nil)

	p, err := service.Register(RegisterRequest{Name: "alice", Email: "alice@example.com", Password: "securePassword"})
	assert.NoError(t, err)
	assert.Equal(t, "alice", p.Name)
	assert.Equal(t, RolePlayer, p.Role)
	assert.NotEqual(t, "securePassword", p.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.Password), []byte("securePassword")))
	mockRepo.AssertExpectations(t)
}

func TestPlayerService_Register_DefaultsToAnonymous(t *testing.T) {
	mockRepo := &MockPlayerRepository{}
	service := NewPlayerService(mockRepo)

	mockRepo.On("FindByEmail", "anon@example.com").Return(nil, nil)
	mockRepo.On("Create", mock.AnythingOfType("*player.Player")).Return(nil)

	p, err := service.Register(RegisterRequest{Email: "anon@example.com", Password: "securePassword"})
	assert.NoError(t, err)
	assert.Equal(t, AnonymousName, p.Name)
	// The anonymous placeholder skips the uniqueness check entirely.
	mockRepo.AssertNotCalled(t, "FindByName", mock.Anything)
}

func TestPlayerService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := &MockPlayerRepository{}
	service := NewPlayerService(mockRepo)

	mockRepo.On("FindByEmail", "alice@example.com").Return(&Player{ID: 1}, nil)

	_, err := service.Register(RegisterRequest{Email: "alice@example.com", Password: "securePassword"})
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
}

func TestPlayerService_Register_DuplicateName(t *testing.T) {
	mockRepo := &MockPlayerRepository{}
	service := NewPlayerService(mockRepo)

	mockRepo.On("FindByEmail", "bob@example.com").Return(nil, nil)
	mockRepo.On("FindByName", "alice").Return(&Player{ID: 1, Name: "alice"}, nil)

	_, err := service.Register(RegisterRequest{Name: "alice", Email: "bob@example.com", Password: "securePassword"})
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
}

func TestPlayerService_Register_RejectsWeakPassword(t *testing.T) {
	service := NewPlayerService(&MockPlayerRepository{})

	_, err := service.Register(RegisterRequest{Email: "alice@example.com", Password: "short"})
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
}

func TestPlayerService_Register_RejectsBadEmail(t *testing.T) {
	service := NewPlayerService(&MockPlayerRepository{})

	_, err := service.Register(RegisterRequest{Email: "not-an-email", Password: "securePassword"})
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
}

func TestPlayerService_Login(t *testing.T) {
	mockRepo := &MockPlayerRepository{}
	service := NewPlayerService(mockRepo)

	hashed, err := bcrypt.GenerateFromPassword([]byte("securePassword"), bcrypt.MinCost)
	assert.NoError(t, err)
	stored := &Player{ID: 7, Email: "alice@example.com", Password: string(hashed), Role: RolePlayer}
	mockRepo.On("FindByEmail", "alice@example.com").Return(stored, nil)
	mockGenerateJWT = func(id uint, role string) (string, error) { return "token123", nil }
	defer func() { mockGenerateJWT = nil }()

	token, p, err := service.Login(LoginRequest{Email: "alice@example.com", Password: "securePassword"})
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
	assert.Equal(t, uint(7), p.ID)
}

func TestPlayerService_Login_WrongPassword(t *testing.T) {
	mockRepo := &MockPlayerRepository{}
	service := NewPlayerService(mockRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("securePassword"), bcrypt.MinCost)
	mockRepo.On("FindByEmail", "alice@example.com").Return(&Player{ID: 7, Password: string(hashed)}, nil)

	_, _, err := service.Login(LoginRequest{Email: "alice@example.com", Password: "wrong"})
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)
}

func TestPlayerService_Login_UnknownEmail(t *testing.T) {
	mockRepo := &MockPlayerRepository{}
	service := NewPlayerService(mockRepo)

	mockRepo.On("FindByEmail", "ghost@example.com").Return(nil, nil)

	_, _, err := service.Login(LoginRequest{Email: "ghost@example.com", Password: "securePassword"})
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Code)
}

func TestPlayerService_UpdateName(t *testing.T) {
	mockRepo := &MockPlayerRepository{}
	service := NewPlayerService(mockRepo)

	mockRepo.On("FindByID", uint(1)).Return(&Player{ID: 1, Name: AnonymousName}, nil)
	mockRepo.On("FindByName", "alice").Return(nil, nil)
	mockRepo.On("Save", mock.MatchedBy(func(p *Player) bool { return p.Name == "alice" })).Return(nil)

	err := service.UpdateName(1, 1, "alice")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestPlayerService_UpdateName_NotFound(t *testing.T) {
	mockRepo := &MockPlayerRepository{}
	service := NewPlayerService(mockRepo)

	mockRepo.On("FindByID", uint(999)).Return(nil, nil)

	err := service.UpdateName(999, 999, "alice")
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestPlayerService_UpdateName_NotSelf(t *testing.T) {
	mockRepo := &MockPlayerRepository{}
	service := NewPlayerService(mockRepo)

	mockRepo.On("FindByID", uint(1)).Return(&Player{ID: 1}, nil)

	err := service.UpdateName(1, 2, "alice")
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestPlayerService_UpdateName_NameTaken(t *testing.T) {
	mockRepo := &MockPlayerRepository{}
	service := NewPlayerService(mockRepo)

	mockRepo.On("FindByID", uint(1)).Return(&Player{ID: 1}, nil)
	mockRepo.On("FindByName", "bob").Return(&Player{ID: 2, Name: "bob"}, nil)

	err := service.UpdateName(1, 1, "bob")
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestPlayerService_UpdateName_KeepingOwnNameIsAllowed(t *testing.T) {
	mockRepo := &MockPlayerRepository{}
	service := NewPlayerService(mockRepo)

	mockRepo.On("FindByID", uint(1)).Return(&Player{ID: 1, Name: "alice"}, nil)
	mockRepo.On("FindByName", "alice").Return(&Player{ID: 1, Name: "alice"}, nil)
	mockRepo.On("Save", mock.AnythingOfType("*player.Player")).Return(nil)

	assert.NoError(t, service.UpdateName(1, 1, "alice"))
}

func TestPlayerService_UpdateName_EmptyResetsToAnonymous(t *testing.T) {
	mockRepo := &MockPlayerRepository{}
	service := NewPlayerService(mockRepo)

	mockRepo.On("FindByID", uint(1)).Return(&Player{ID: 1, Name: "alice"}, nil)
	mockRepo.On("Save", mock.MatchedBy(func(p *Player) bool { return p.Name == AnonymousName })).Return(nil)

	assert.NoError(t, service.UpdateName(1, 1, ""))
	// No uniqueness check for the shared placeholder.
	mockRepo.AssertNotCalled(t, "FindByName", mock.Anything)
}

func TestPlayerService_ListPlayers(t *testing.T) {
	mockRepo := &MockPlayerRepository{}
	service := NewPlayerService(mockRepo)

	stored := []Player{{ID: 1, Name: "alice"}, {ID: 2, Name: AnonymousName}}
	mockRepo.On("FindAll").Return(stored, nil)

	players, err := service.ListPlayers()
	assert.NoError(t, err)
	assert.Equal(t, stored, players)
}
