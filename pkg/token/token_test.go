package token

import (
	"testing"
	"time"
)

func TestSignAndValidateCredential(t *testing.T) {
	GenerateSecretKey()

	cred := ImportCredential{
		UserID:   "0198c5a0-0000-7000-8000-000000000001",
		Source:   "steam",
		IssuedAt: time.Now().Unix(),
	}

	sig, err := SignImportCredential(cred)
	if err != nil {
		t.Fatalf("签名失败: %v", err)
	}
	if sig == "" {
		t.Fatal("签名不应为空")
	}

	if !ValidateImportCredential(cred, sig) {
		t.Error("原样带回的凭证应通过验证")
	}
}

func TestValidateTamperedCredential(t *testing.T) {
	GenerateSecretKey()

	cred := ImportCredential{UserID: "user-a", Source: "steam", IssuedAt: time.Now().Unix()}
	sig, err := SignImportCredential(cred)
	if err != nil {
		t.Fatalf("签名失败: %v", err)
	}

	// 篡改任何字段都应导致验证失败
	tampered := cred
	tampered.UserID = "user-b"
	if ValidateImportCredential(tampered, sig) {
		t.Error("篡改UserID后验证不应通过")
	}

	tampered = cred
	tampered.Source = "playstation"
	if ValidateImportCredential(tampered, sig) {
		t.Error("篡改Source后验证不应通过")
	}

	tampered = cred
	tampered.IssuedAt += 3600
	if ValidateImportCredential(tampered, sig) {
		t.Error("篡改IssuedAt后验证不应通过")
	}
}

func TestValidateMalformedSignature(t *testing.T) {
	GenerateSecretKey()

	cred := ImportCredential{UserID: "user-a", Source: "steam", IssuedAt: time.Now().Unix()}
	if ValidateImportCredential(cred, "not-base64!!!") {
		t.Error("非法Base64签名不应通过验证")
	}
	if ValidateImportCredential(cred, "") {
		t.Error("空签名不应通过验证")
	}
}
