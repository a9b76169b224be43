package lifecycle

import (
	"testing"
	"time"
)

func TestDuplicateServiceRegistration(t *testing.T) {
	m := NewManager()

	if _, err := m.NewServiceHandle("worker"); err != nil {
		t.Fatalf("首次注册失败: %v", err)
	}
	if _, err := m.NewServiceHandle("worker"); err == nil {
		t.Error("重复注册同名服务应失败")
	}
}

func TestShutdownReachesHandle(t *testing.T) {
	m := NewManager()
	handle, err := m.NewServiceHandle("worker")
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		defer handle.Close()
		// 停机信号应打断长休眠
		done <- handle.Sleep(time.Minute)
	}()

	m.Shutdown()

	select {
	case err := <-done:
		if err == nil {
			t.Error("停机后Sleep应返回取消错误")
		}
	case <-time.After(time.Second):
		t.Fatal("停机信号未能及时打断Sleep")
	}

	if remaining := m.WaitWithTimeout(time.Second); remaining != nil {
		t.Errorf("服务应已全部退出, 仍在运行: %v", remaining)
	}
}

func TestWaitWithTimeoutReportsStragglers(t *testing.T) {
	m := NewManager()
	if _, err := m.NewServiceHandle("stuck-worker"); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	m.Shutdown()

	// 该服务从不调用Close，应被报告为超时未退出
	remaining := m.WaitWithTimeout(50 * time.Millisecond)
	if len(remaining) != 1 || remaining[0] != "stuck-worker" {
		t.Errorf("应报告未退出的服务, got %v", remaining)
	}
}

func TestSleepCompletesNormally(t *testing.T) {
	m := NewManager()
	handle, err := m.NewServiceHandle("worker")
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	defer handle.Close()

	if err := handle.Sleep(time.Millisecond); err != nil {
		t.Errorf("未停机时Sleep应正常返回: %v", err)
	}
}
