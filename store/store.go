package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"SecondBrainGo/models"
)

// StorageError 记忆文档读写失败
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store 记忆文档存储，整体加载、整体覆盖写入
// 内部互斥锁串行化所有 load-mutate-save 周期，防止并发请求互相覆盖
type Store struct {
	mu   sync.Mutex
	path string
}

// New 创建存储句柄并探测文档是否可读
func New(path string) (*Store, error) {
	s := &Store{path: path}
	if _, err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load 读取整个记忆文档
func (s *Store) Load() (*models.Memory, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &StorageError{Op: "read", Err: err}
	}
	var mem models.Memory
	if err := json.Unmarshal(data, &mem); err != nil {
		return nil, &StorageError{Op: "decode", Err: err}
	}
	return &mem, nil
}

// Save 覆盖写入整个记忆文档，保持可读的缩进格式
func (s *Store) Save(mem *models.Memory) error {
	data, err := json.MarshalIndent(mem, "", "  ")
	if err != nil {
		return &StorageError{Op: "encode", Err: err}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}

// View 在锁内加载文档并执行只读访问，不写回
func (s *Store) View(fn func(mem *models.Memory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mem, err := s.Load()
	if err != nil {
		return err
	}
	return fn(mem)
}

// Update 在锁内执行一次完整的 load-mutate-save 周期
// fn 返回错误时放弃写入，原样向上传递
func (s *Store) Update(fn func(mem *models.Memory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mem, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(mem); err != nil {
		return err
	}
	return s.Save(mem)
}
