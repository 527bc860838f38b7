// Package safeclose 协调多个子服务的优雅关闭
package safeclose

import (
	"sync"
)

// SafeClose coordinates shutdown across attached goroutines.
// SafeClose 在挂接的协程之间协调关闭
// 任意一方调用 SendCloseSignal 后，所有协程收到关闭信号；
// WaitClosed 阻塞直到全部协程完成
type SafeClose struct {
	mu          sync.Mutex
	wg          sync.WaitGroup
	closeSignal chan struct{}
	closed      bool
	err         error
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach starts fn in its own goroutine. fn must call done() when finished
// and must return promptly once closeSignal fires.
// Attach 在独立协程中启动 fn。fn 结束时必须调用 done()，
// 并在 closeSignal 触发后尽快返回
func (s *SafeClose) Attach(fn func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	go fn(s.wg.Done, s.closeSignal)
}

// SendCloseSignal 发送关闭信号，可携带触发关闭的错误
// 只有第一次调用生效
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.closeSignal)
}

// WaitClosed 阻塞直到所有挂接协程退出，返回触发关闭的错误
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
