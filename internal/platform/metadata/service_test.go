package metadata

import (
	"fmt"
	"os"
	"testing"

	"github.com/SlpAus/game-shelf-backend/internal/platform/config"
	"github.com/SlpAus/game-shelf-backend/internal/platform/database"
)

func TestMain(m *testing.M) {
	if err := database.InitDB(config.SqliteConfig{Path: "file::memory:?cache=shared"}); err != nil {
		panic(fmt.Sprintf("无法初始化测试数据库: %v", err))
	}
	if err := PrimeDB(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestGetValueMissingKey(t *testing.T) {
	value, err := GetValue(database.DB, "no-such-key")
	if err != nil {
		t.Fatalf("读取缺失的键不应报错: %v", err)
	}
	if value != "" {
		t.Errorf("缺失的键应返回空字符串, got %q", value)
	}
}

func TestSetValueUpsert(t *testing.T) {
	if err := SetValue(database.DB, "k", "v1"); err != nil {
		t.Fatalf("写入失败: %v", err)
	}
	if err := SetValue(database.DB, "k", "v2"); err != nil {
		t.Fatalf("覆盖写入失败: %v", err)
	}

	value, err := GetValue(database.DB, "k")
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if value != "v2" {
		t.Errorf("值 = %q, 期望 v2", value)
	}

	// 同一键只应有一行
	var count int64
	if err := database.DB.Model(&Metadata{}).Where("key = ?", "k").Count(&count).Error; err != nil {
		t.Fatalf("计数失败: %v", err)
	}
	if count != 1 {
		t.Errorf("upsert后同一键应只有一行, got %d", count)
	}
}

func TestCatalogSeedVersionRoundtrip(t *testing.T) {
	if err := SetCatalogSeedVersion(database.DB, "7"); err != nil {
		t.Fatalf("写入种子版本失败: %v", err)
	}
	version, err := GetCatalogSeedVersion(database.DB)
	if err != nil {
		t.Fatalf("读取种子版本失败: %v", err)
	}
	if version != "7" {
		t.Errorf("种子版本 = %q, 期望 7", version)
	}
}
