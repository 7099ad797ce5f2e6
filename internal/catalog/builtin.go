package catalog

// ContinuityMemoryID triggers the automated-behaviors block in rendered output.
const ContinuityMemoryID = "continuity_memory"

// Builtin returns the catalog shipped with the product.
func Builtin() *Catalog {
	constraints := []Constraint{
		{
			ID:     "zh_response",
			Labels: map[string]string{LocaleEN: "Chinese Response", LocaleZH: "中文响应"},
			Prompt: "Always reply in Chinese. 所有解释和回复必须使用中文。",
		},
		{
			ID:             "strict_ts",
			Labels:         map[string]string{LocaleEN: "Strict TypeScript", LocaleZH: "严格 TypeScript"},
			Prompt:         "Strict TypeScript only. No 'any' allowed. Use interfaces over types for public APIs.",
			NegativePrompt: "Never use 'any', implicit returns, or @ts-ignore to silence the compiler.",
		},
		{
			ID:     "concise",
			Labels: map[string]string{LocaleEN: "Concise Mode", LocaleZH: "极简模式"},
			Prompt: "Be extremely concise. Give code directly unless explanation is requested. 保持极简，直接给代码。",
		},
		{
			ID:     "explain",
			Labels: map[string]string{LocaleEN: "Explain First", LocaleZH: "先讲思路"},
			Prompt: "Explain the logic and architecture before providing code snippets. 在给出代码前，深入分析逻辑和架构。",
		},
		{
			ID:     "functional",
			Labels: map[string]string{LocaleEN: "Functional Pattern", LocaleZH: "函数式编程"},
			Prompt: "Follow Functional Programming principles. Use pure functions and immutability.",
		},
		{
			ID:             "no_deps",
			Labels:         map[string]string{LocaleEN: "No External Deps", LocaleZH: "无外部依赖"},
			Prompt:         "Prefer built-in modules. Minimize external dependencies.",
			NegativePrompt: "Do not add new third-party packages without explicit approval.",
		},
		{
			ID:     ContinuityMemoryID,
			Labels: map[string]string{LocaleEN: "Continuity Memory", LocaleZH: "连续记忆"},
			Prompt: "Maintain session continuity. Persist and restore working context across sessions.",
		},
		{
			ID:     "test_vitest",
			Labels: map[string]string{LocaleEN: "Vitest Coverage", LocaleZH: "Vitest 覆盖"},
			Prompt: "Expert QA Mode: Every function must have a Vitest file. Use the Arrange-Act-Assert pattern.",
		},
		{
			ID:     "test_mock",
			Labels: map[string]string{LocaleEN: "Isolated Tests", LocaleZH: "隔离测试"},
			Prompt: "Mock all external service calls and databases. Ensure tests are isolated and idempotent.",
		},
	}

	modes := []Mode{
		{
			ID:                       "feature",
			Labels:                   map[string]string{LocaleEN: "Feature", LocaleZH: "功能开发"},
			RecommendedConstraintIDs: []string{"strict_ts", "concise"},
		},
		{
			ID:                       "testing",
			Labels:                   map[string]string{LocaleEN: "Testing", LocaleZH: "测试模式"},
			RecommendedConstraintIDs: []string{"test_vitest", "test_mock"},
		},
		{
			ID:                       "refactor",
			Labels:                   map[string]string{LocaleEN: "Refactor", LocaleZH: "重构模式"},
			RecommendedConstraintIDs: []string{"functional", "no_deps"},
		},
	}

	return New(constraints, modes)
}
