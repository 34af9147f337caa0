package server

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 回执相关配置
const (
	// 回执有效期：30 天内可以撤销点赞
	ReceiptTTL = 30 * 24 * time.Hour

	// 回执签发者
	receiptIssuer = "carrothunt-likes"
)

var ErrInvalidReceipt = errors.New("无效的回执")

// ReceiptClaims 回执中携带的信息
type ReceiptClaims struct {
	Level string `json:"level"`
	User  string `json:"user"`
	jwt.RegisteredClaims
}

// ReceiptIssuer 签发和校验点赞回执（HS256）
type ReceiptIssuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewReceiptIssuer 使用指定密钥创建签发器
func NewReceiptIssuer(secret string) *ReceiptIssuer {
	return &ReceiptIssuer{key: []byte(secret), ttl: ReceiptTTL, now: time.Now}
}

// ReceiptIssuerFromEnv 从环境变量 LIKE_SECRET 读取密钥，不存在时使用默认值
func ReceiptIssuerFromEnv() *ReceiptIssuer {
	secret := os.Getenv("LIKE_SECRET")
	if secret == "" {
		// 开发环境默认密钥，生产环境应设置环境变量
		secret = "carrothunt-dev-secret-change-in-production"
	}
	return NewReceiptIssuer(secret)
}

// Issue 为一次点赞签发回执
func (r *ReceiptIssuer) Issue(level, user string) (string, error) {
	now := r.now()
	claims := ReceiptClaims{
		Level: level,
		User:  user,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    receiptIssuer,
			Subject:   fmt.Sprintf("%s/%s", level, user),
			ExpiresAt: jwt.NewNumericDate(now.Add(r.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(r.key)
}

// Verify 校验回执，返回关卡和用户
func (r *ReceiptIssuer) Verify(receipt string) (string, string, error) {
	token, err := jwt.ParseWithClaims(receipt, &ReceiptClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名算法: %v", token.Header["alg"])
		}
		return r.key, nil
	}, jwt.WithIssuer(receiptIssuer), jwt.WithTimeFunc(r.now))
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}

	claims, ok := token.Claims.(*ReceiptClaims)
	if !ok || !token.Valid || claims.Level == "" || claims.User == "" {
		return "", "", ErrInvalidReceipt
	}
	return claims.Level, claims.User, nil
}
