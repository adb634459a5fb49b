package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"FreshBasket-Backend/domain"
	"FreshBasket-Backend/entities"
	"FreshBasket-Backend/internal/utils"
	"FreshBasket-Backend/internal/utils/mailing"
	"FreshBasket-Backend/internal/utils/storage"
	"FreshBasket-Backend/pkg/cart"
	"FreshBasket-Backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) error
		UploadAvatar(ctx context.Context, req domain.UploadAvatarRequest, userID string) (string, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		GoogleLoginURL(state string) string
		GoogleCallback(ctx context.Context, code string, guestID string) (domain.LoginResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		cartService    cart.CartService
		s3             storage.AwsS3
		oauthConfig    *oauth2.Config
	}
)

func NewUserService(
	userRepository UserRepository,
	jwtService jwt.JWTService,
	cartService cart.CartService,
	s3 storage.AwsS3,
) UserService {
	oauthConfig := &oauth2.Config{
		ClientID:     utils.GetConfig("GOOGLE_CLIENT_ID"),
		ClientSecret: utils.GetConfig("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  utils.GetConfig("GOOGLE_REDIRECT_URL"),
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}

	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		cartService:    cartService,
		s3:             s3,
		oauthConfig:    oauthConfig,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hashed),
		FullName: req.FullName,
		Phone:    req.Phone,
		Provider: "local",
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.RegisterResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		FullName: user.FullName,
		Token:    token,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if user.Password == "" {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	s.mergeGuestCart(ctx, req.GuestID, user.ID.String())

	return domain.LoginResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		FullName: user.FullName,
		Token:    token,
	}, nil
}

// mergeGuestCart runs best-effort at sign-in: a merge failure is logged but
// never blocks the session. Unmigrated guest lines stay in the guest cart and
// the explicit merge endpoint can retry them.
func (s *userService) mergeGuestCart(ctx context.Context, guestID string, userID string) {
	if guestID == "" {
		return
	}
	if err := s.cartService.MergeGuestCart(ctx, guestID, userID); err != nil {
		log.Printf("error merging guest cart %s into user %s: %v", guestID, userID, err)
	}
}

func (s *userService) Me(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}

	return domain.ProfileResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		Provider:  user.Provider,
		ImageURL:  user.ImageURL,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) UploadAvatar(ctx context.Context, req domain.UploadAvatarRequest, userID string) (string, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	fileName := fmt.Sprintf("avatar-%s", user.ID.String())
	var objectKey string
	var uploadErr error

	if user.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(user.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Avatar, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Avatar, "avatars", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Avatar, "avatars", storage.AllowImage...)
	}

	if uploadErr != nil {
		return "", uploadErr
	}

	user.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return "", err
	}

	return user.ImageURL, nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{
		"user_id": user.ID.String(),
	}, 30*time.Minute)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/auth/reset-password?token=%s", utils.GetConfig("WEB_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Click <a href=\"%s\">here</a> to reset your FreshBasket password. The link expires in 30 minutes.</p>",
		user.FullName, resetLink,
	)

	return mailing.SendMail(user.Email, "Reset your FreshBasket password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GoogleLoginURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *userService) GoogleCallback(ctx context.Context, code string, guestID string) (domain.LoginResponse, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return domain.LoginResponse{}, domain.ErrOAuthExchangeFailed
	}

	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return domain.LoginResponse{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	var info struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return domain.LoginResponse{}, err
	}

	user, err := s.userRepository.GetUserByEmail(ctx, info.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &entities.User{
			ID:       uuid.New(),
			Email:    info.Email,
			FullName: info.Name,
			Provider: "google",
			Role:     domain.RoleUser,
			ImageURL: info.Picture,
		}
		if err := s.userRepository.CreateUser(ctx, user); err != nil {
			return domain.LoginResponse{}, err
		}
	} else if err != nil {
		return domain.LoginResponse{}, err
	}

	jwtToken := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	s.mergeGuestCart(ctx, guestID, user.ID.String())

	return domain.LoginResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		FullName: user.FullName,
		Token:    jwtToken,
	}, nil
}
