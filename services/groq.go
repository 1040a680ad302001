package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"SecondBrainGo/config"
)

// 按优先顺序尝试的模型列表
var groqModels = []string{
	"llama-3.3-70b-versatile",
	"llama-3.1-8b-instant",
	"mixtral-8x7b-32768",
}

// GroqClient 通过 OpenAI 兼容接口访问 Groq，每个候选模型一个客户端
type GroqClient struct {
	chats []llms.Model
	names []string
}

// NewGroqClient 创建客户端，apiKey 为空时返回空客户端，调用方会走兜底回复
func NewGroqClient(apiKey, apiEndpoint string) (*GroqClient, error) {
	client := &GroqClient{}
	if apiKey == "" {
		return client, nil
	}

	for _, model := range groqModels {
		chat, err := openai.New(
			openai.WithToken(apiKey),
			openai.WithBaseURL(apiEndpoint),
			openai.WithModel(model),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Groq client: %w", err)
		}
		client.chats = append(client.chats, chat)
		client.names = append(client.names, model)
	}
	return client, nil
}

// Available 是否配置了可用的模型
func (c *GroqClient) Available() bool {
	return len(c.chats) > 0
}

// Chat 依次尝试各模型，某个模型失败则换下一个，全部失败时返回错误
func (c *GroqClient) Chat(ctx context.Context, prompt string) (string, error) {
	if !c.Available() {
		return "", errors.New("no groq api key configured")
	}

	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	options := []llms.CallOption{
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(900),
	}

	for i, chat := range c.chats {
		resp, err := chat.GenerateContent(ctx, messages, options...)
		if err != nil {
			config.Logger.Warnw("模型调用失败，尝试下一个", "model", c.names[i], "error", err)
			continue
		}
		if len(resp.Choices) == 0 {
			config.Logger.Warnw("模型未返回内容", "model", c.names[i])
			continue
		}
		return resp.Choices[0].Content, nil
	}
	return "", errors.New("all groq models failed")
}
