// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"digital_mechanic/internal/feature/auth/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化し、IDとタイムスタンプを設定します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに完全一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// Outcome は認証リクエストの結果の種類です。
type Outcome int

const (
	// OutcomeAuthenticated は既存ユーザーの認証に成功したことを表します。
	OutcomeAuthenticated Outcome = iota + 1
	// OutcomeCreated は新規ユーザーを登録したことを表します。
	OutcomeCreated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAuthenticated:
		return "authenticated"
	case OutcomeCreated:
		return "created"
	default:
		return "unknown"
	}
}

// AuthResult は認証または登録の結果です。
type AuthResult struct {
	User    *entity.User
	Outcome Outcome
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users UserRepository
	cost  int
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository) *authUsecase {
	return &authUsecase{users: users, cost: bcrypt.DefaultCost}
}

// Login は既存ユーザーのパスワードを検証します。
// ユーザーが存在しない場合はErrUserNotFound、パスワード不一致の場合はErrInvalidCredentialsを返します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return verify(user, password)
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
// 同時登録で先を越された場合は、登録済みユーザーに対してパスワードを一度だけ検証し直します。
func (u *authUsecase) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrInvalidInput
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, Password: string(hashed)}
	err = u.users.Create(ctx, user)
	switch {
	case err == nil:
		return &AuthResult{User: user, Outcome: OutcomeCreated}, nil
	case errors.Is(err, ErrEmailAlreadyExists):
		existing, findErr := u.users.FindByEmail(ctx, email)
		if findErr != nil {
			return nil, fmt.Errorf("re-read user after duplicate email: %w", findErr)
		}
		return verify(existing, password)
	default:
		return nil, fmt.Errorf("create user: %w", err)
	}
}

// AuthenticateOrRegister はメールアドレスでユーザーを解決します。
// 既存ユーザーならパスワードを検証し、未登録かつnameが指定されていれば新規登録します。
// 未登録でnameが空の場合はErrRegistrationRequiredを返します。
func (u *authUsecase) AuthenticateOrRegister(ctx context.Context, email, password, name string) (*AuthResult, error) {
	res, err := u.Login(ctx, email, password)
	if !errors.Is(err, ErrUserNotFound) {
		return res, err
	}
	if name == "" {
		return nil, ErrRegistrationRequired
	}
	return u.Register(ctx, name, email, password)
}

func verify(user *entity.User, password string) (*AuthResult, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &AuthResult{User: user, Outcome: OutcomeAuthenticated}, nil
}
