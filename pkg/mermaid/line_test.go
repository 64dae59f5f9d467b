package mermaid

import "testing"

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want lineKind
	}{
		{"empty", "", lineBlank},
		{"whitespace only", "   \t", lineBlank},
		{"graph TD", "graph TD", lineDeclaration},
		{"flowchart LR indented", "  flowchart LR", lineDeclaration},
		{"sequence diagram", "sequenceDiagram", lineDeclaration},
		{"class diagram", "classDiagram", lineDeclaration},
		{"end keyword", "    end", lineDeclaration},
		{"style directive", "style A fill:#f9f", lineStyle},
		{"subgraph header", "subgraph データフロー", lineSubgraph},
		{"subgraph indented", "  subgraph Prep", lineSubgraph},
		{"node line", "A[入力] --> B", lineContent},
		{"unknown directive", "linkStyle 0 stroke:red", lineContent},
		{"graph with trailing text", "graph TD extra", lineContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyLine(tt.in); got != tt.want {
				t.Errorf("classifyLine(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFixBlock(t *testing.T) {
	in := `graph TD
    A[入力データ] --> B{判定: True?}
    B -->|はい| C[simple]
    style A fill:#f9f

    subgraph 前処理
        D[正規化] --> E[クリーニング]
    end
    subgraph ID[データフロー]
        F[x] --> G[y]
    end`

	want := `graph TD
    A["入力データ"] --> B{"判定: True?"}
    B -->|"はい"| C[simple]
    style A fill:#f9f

    subgraph "前処理"
        D["正規化"] --> E["クリーニング"]
    end
    subgraph ID["データフロー"]
        F[x] --> G[y]
    end`

	got := fixBlock(in)
	if got != want {
		t.Errorf("fixBlock mismatch\n got:\n%s\nwant:\n%s", got, want)
	}

	// Idempotence: the fixed block must survive a second pass untouched.
	if again := fixBlock(got); again != got {
		t.Errorf("fixBlock not idempotent\nfirst:\n%s\nsecond:\n%s", got, again)
	}
}
