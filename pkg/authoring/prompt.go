package authoring

import "fmt"

// systemPrompt fixes the style of generated lecture bodies: Japanese
// technical prose with full-width punctuation and a fixed section
// layout. The frontmatter is attached separately, so the model must
// not emit one.
const systemPrompt = `あなたはCUDAプログラミングの専門家です．英語のUdemyレクチャートランスクリプトを基に，日本語の技術解説MDXコンテンツを生成してください．

ルール:
- 句点は「．」（全角ピリオド），読点は「，」（全角カンマ）を使用
- リストはハイフン（-）を使用
- MDXのfrontmatterは含めない（別途付与する）
- 技術用語は適切にコードブロック（` + "`backtick`" + `）で囲む
- CUDAのコード例がある場合はC/CUDAコードブロックで記述
- Mermaidダイアグラムを適切に含める（アーキテクチャ図，フロー図など）
- 以下のセクション構成で記述:
  1. ## 概要（レクチャーの要約，2-3文）
  2. ## 主要な内容（本文，複数のh3サブセクションに分割）
  3. ## コード例（該当する場合）
  4. ## まとめ（箇条書きで3-5点）
- 各セクションは充実した内容にする（全体で800-1500文字程度）
- トランスクリプトの内容を忠実に反映しつつ，構造化された解説にする`

// buildUserPrompt frames one transcript for the model together with
// the lecture and section it belongs to.
func buildUserPrompt(transcript, title, sectionTitle string) string {
	return fmt.Sprintf(`以下のUdemyレクチャーのトランスクリプトを基に，日本語の技術解説MDXコンテンツを生成してください．

レクチャータイトル: %s
セクション: %s

トランスクリプト:
%s`, title, sectionTitle, transcript)
}
