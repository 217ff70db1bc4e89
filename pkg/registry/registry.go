// Package registry はモードごとのモデルIDとシステム指示を静的に保持します。
// 実行時に変更されることはなく、モデルの差し替えは本パッケージの定数編集のみで完結します。
package registry

import (
	"github.com/shouni/gemini-philo-kit/pkg/domain"
	"github.com/shouni/gemini-philo-kit/pkg/utils"
)

// 使用モデル。差し替えはここだけを編集すれば良い設計です。
const (
	ModelTranslateFast = "gemini-2.5-flash"
	ModelTranslateDeep = "gemini-2.5-pro"
	ModelAnalyze       = "gemini-2.5-flash"
	ModelTermLookup    = "gemini-2.5-flash"
	ModelImagine       = "gemini-3-pro-image-preview"
)

// DeepThinkingBudget は深い翻訳モードで常に付与する思考バジェットです。
const DeepThinkingBudget int32 = 32768

// TranslatorInstruction は翻訳モード（fast/deep共通）のシステム指示です。
const TranslatorInstruction = `You are an expert translator of philosophical texts between English and Turkish.
Detect the source language of the given text and translate it into the other language.
Preserve the author's register and argumentative structure. Keep established
philosophical terminology precise; leave untranslatable technical terms
(e.g. "Dasein", "Übermensch") in their original form with a short gloss in
parentheses on first occurrence. Return only the translation, with no
commentary and no markdown fences.`

// AnalysisInstruction は画像解析モードのシステム指示です。
// 文字を含む画像は翻訳し、含まない画像は哲学的象徴として読み直します。
const AnalysisInstruction = `You are an expert in philosophy and visual culture, working between English and Turkish.
If the supplied image contains visible text, transcribe it and translate it
between English and Turkish. If the image contains no text, reinterpret its
visual symbolism philosophically; keep named philosophical terms untranslated.
Answer in the language of the user's instruction, or in Turkish when the
instruction does not indicate a language.`

// DefaultAnalyzeInstruction は解析モードで自由指示が無いときの既定文です。
const DefaultAnalyzeInstruction = "Describe this image and interpret its meaning."

// TermLookupTemplate は用語検索のプロンプト雛形です（%s に用語が入る）。
const TermLookupTemplate = `Define the philosophical term %q concisely using current, reliable web sources.
Give the definition first in English, then in Turkish. Mention the main
thinkers associated with the term. Keep the whole answer under 200 words.`

// ModeConfig は1つのモードに解決された設定です。構築後は変更されません。
type ModeConfig struct {
	Model             string
	SystemInstruction string // 空文字列はシステム指示なし
	ThinkingBudget    *int32 // translate-deep のみ
	EnableSearch      bool   // term-lookup のみ
	AspectRatio       string // generate-image のみ
}

// Config はモードに対応する設定を返します。
// モードと設定は常に1対1で、他のモードと指示やモデルを暗黙に共有しません
// （fast/deep 翻訳が翻訳者指示を共有するのは明示的な仕様です）。
func Config(mode domain.Mode) ModeConfig {
	switch mode {
	case domain.ModeTranslateFast:
		return ModeConfig{Model: ModelTranslateFast, SystemInstruction: TranslatorInstruction}
	case domain.ModeTranslateDeep:
		return ModeConfig{Model: ModelTranslateDeep, SystemInstruction: TranslatorInstruction, ThinkingBudget: utils.Ptr(DeepThinkingBudget)}
	case domain.ModeAnalyze:
		return ModeConfig{Model: ModelAnalyze, SystemInstruction: AnalysisInstruction}
	case domain.ModeGenerateImage:
		return ModeConfig{Model: ModelImagine, AspectRatio: "1:1"}
	case domain.ModeTermLookup:
		return ModeConfig{Model: ModelTermLookup, EnableSearch: true}
	default:
		// 未知のモードは fast 翻訳相当にフォールバックさせない。
		// 呼び出し側のバグを早期に表面化させるため空設定を返す。
		return ModeConfig{}
	}
}
