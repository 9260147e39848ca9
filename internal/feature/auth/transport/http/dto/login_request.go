// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "digital_mechanic/internal/feature/auth/domain/entity"

// LoginReq は/api/auth/loginエンドポイントのリクエストボディを表します。
// nameは未登録のメールアドレスで新規登録する場合にのみ使われます。
type LoginReq struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserSummary はクライアントに返すユーザー情報です。パスワードハッシュは含みません。
type UserSummary struct {
	MongoID string `json:"_id"`
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email"`
}

// LoginRes はログイン/登録成功時のレスポンスです。
type LoginRes struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// NewUserSummary はユーザーエンティティから公開用のサマリーを生成します。
func NewUserSummary(u *entity.User) UserSummary {
	return UserSummary{
		MongoID: u.ID,
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
	}
}
