package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// secretKey 是服务器在启动时生成的32字节密钥。
var secretKey []byte

// ImportCredential 定义了需要被签名的导入凭证结构。
// 它在 /collection/import/token 的响应中签发，
// 并在 /collection/import 的请求体中被原样带回验证。
type ImportCredential struct {
	UserID   string `json:"u"`
	Source   string `json:"s"`
	IssuedAt int64  `json:"t"`
}

// GenerateSecretKey 生成一个密码学安全的32字节随机密钥。
func GenerateSecretKey() {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	if err != nil {
		panic("无法生成安全的密钥: " + err.Error())
	}
	secretKey = key
	fmt.Println("HMAC密钥已成功生成。")
}

// SignImportCredential 为一个给定的ImportCredential生成HMAC签名。
// 返回签名的Base64编码字符串。
func SignImportCredential(cred ImportCredential) (string, error) {
	// 1. 将凭证序列化为JSON字符串
	credBytes, err := json.Marshal(cred)
	if err != nil {
		return "", errors.New("无法序列化导入凭证")
	}

	// 2. 使用HMAC-SHA256和密钥对凭证进行签名
	mac := hmac.New(sha256.New, secretKey)
	mac.Write(credBytes)
	signature := mac.Sum(nil)

	// 3. 对签名进行Base64编码，并返回
	return base64.RawURLEncoding.EncodeToString(signature), nil
}

// ValidateImportCredential 验证一个给定的凭证和签名是否匹配。
func ValidateImportCredential(cred ImportCredential, signatureB64 string) bool {
	// 1. 将传入的凭证重新序列化，以确保与签名时的数据格式完全一致
	credBytes, err := json.Marshal(cred)
	if err != nil {
		return false
	}

	// 2. 重新计算预期的签名
	mac := hmac.New(sha256.New, secretKey)
	mac.Write(credBytes)
	expectedSignature := mac.Sum(nil)

	// 3. 解码调用方传来的签名
	actualSignature, err := base64.RawURLEncoding.DecodeString(signatureB64)
	if err != nil {
		return false
	}

	// 4. 使用 hmac.Equal 进行时间恒定的比较，防止时序攻击
	return hmac.Equal(expectedSignature, actualSignature)
}
