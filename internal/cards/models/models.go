// Package models はapbacardsコマンドのエクスポート用データモデルを定義します
package models

// Player はJSONエクスポート用の選手カード1枚を表します
type Player struct {
	LastName         string   `json:"lastName"`
	FirstName        string   `json:"firstName"`
	Position         string   `json:"position"`
	Grade            string   `json:"grade"`
	Bats             string   `json:"bats"`
	Throws           string   `json:"throws"` // 独立フィールド未特定のためBatsと同値
	CardNumber       string   `json:"cardNumber"`
	DescriptorTokens []string `json:"descriptorTokens"`
	RawDescriptor    string   `json:"rawDescriptor"`
	RatingBytes      []int    `json:"ratingBytes"` // 未解釈の生レーティング値
	ChartBytes       []int    `json:"chartBytes"`  // 未解釈の打撃チャート
}

// Outcome はJSONエクスポート用の結果エントリ1件を表します
type Outcome struct {
	Code    int    `json:"code"`
	Offset  uint32 `json:"offset"`
	Message string `json:"message"`
}

// OutcomeTable は.TBL/.MSG対1組の解読結果を表します
type OutcomeTable struct {
	Name      string    `json:"name"`      // テーブル名 (例: B3EHNUM)
	Signature string    `json:"signature"` // .TBLのシグネチャ (オフセット0x04)
	HasBlock  bool      `json:"hasBlock"`  // .BLKファイルの有無 (構造未解明、未解析)
	Outcomes  []Outcome `json:"outcomes"`  // コード昇順
}

// SeasonData はシーズンディレクトリ1つ分の解読結果をまとめたものです
type SeasonData struct {
	Season        string         `json:"season"`
	PlayersSource string         `json:"playersSource,omitempty"`
	Players       []Player       `json:"players,omitempty"`
	OutcomeTables []OutcomeTable `json:"outcomeTables,omitempty"`
}
