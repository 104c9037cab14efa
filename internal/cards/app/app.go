// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/shiroemons/go-apbacard/internal/cards/config"
	"github.com/shiroemons/go-apbacard/internal/cards/fileutil"
	"github.com/shiroemons/go-apbacard/internal/cards/interfaces"
	"github.com/shiroemons/go-apbacard/internal/cards/models"
	"github.com/shiroemons/go-apbacard/pkg/carddeck"
	"github.com/shiroemons/go-apbacard/pkg/outcometab"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config *config.Config
	logger interfaces.Logger
	fs     interfaces.FileSystem
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	return &App{
		config: cfg,
		logger: config.NewDebugLogger(cfg.DebugMode),
		fs:     fs,
	}
}

// Run はアプリケーションを実行します
func (a *App) Run(ctx context.Context) error {
	playersPath, err := a.resolvePlayersPath()
	if err != nil {
		return err
	}

	season := models.SeasonData{}

	// 選手ファイルの解読
	if playersPath != "" {
		players, skipped, err := a.processPlayers(ctx, playersPath)
		if err != nil {
			return err
		}
		season.Season = fileutil.SeasonName(playersPath)
		season.PlayersSource = filepath.Base(playersPath)
		season.Players = players
		fmt.Printf("%d 件の選手カードを解読しました (%d 件スキップ)\n", len(players), skipped)
	}

	// 結果テーブルの解読
	if a.config.TablesDir != "" {
		tables, err := a.processTables(ctx)
		if err != nil {
			return err
		}
		season.OutcomeTables = tables
		for _, table := range tables {
			fmt.Printf("テーブル %s: %d 件の結果エントリを解読しました\n", table.Name, len(table.Outcomes))
		}
		if season.Season == "" {
			season.Season = fileutil.SeasonName(a.config.TablesDir)
		}
	}

	// 出力の保存
	outputFilename := fileutil.GenerateOutputFilename(season.Season)
	outputPath := filepath.Join(a.config.OutputDir, outputFilename)

	if a.config.DryRun {
		a.logger.Printf("ドライラン: %s への保存をスキップします\n", outputPath)
		return nil
	}

	if err := fileutil.SaveJSON(a.fs, outputPath, season); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFile, err)
	}

	fmt.Printf("データを %s に保存しました\n", outputPath)
	return nil
}

// resolvePlayersPath は選手ファイルのパスを決定します。
// 未指定の場合はカレントディレクトリから自動検出を試みます
func (a *App) resolvePlayersPath() (string, error) {
	if a.config.PlayersPath != "" {
		if !a.fs.FileExists(a.config.PlayersPath) {
			return "", fmt.Errorf("%w: %s", ErrPlayersNotFound, a.config.PlayersPath)
		}
		return a.config.PlayersPath, nil
	}

	currentDir, err := a.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %w", fileutil.ErrGetCurrentDirectory, err)
	}

	found, err := fileutil.FindPlayersFile(a.fs, currentDir)
	if err == nil && found != "" {
		a.logger.Printf("自動検出したファイル %s を使用します\n", filepath.Base(found))
		return found, nil
	}

	// 選手ファイルがなくてもテーブルだけの実行は可能
	if a.config.TablesDir != "" {
		return "", nil
	}

	return "", ErrNoInput
}

// processPlayers は選手ファイルを読み込んで解読します
func (a *App) processPlayers(ctx context.Context, playersPath string) ([]models.Player, int, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return nil, 0, ctx.Err()
	default:
	}

	a.logger.Printf("選手ファイル %s を読み込みます...\n", playersPath)

	data, err := a.fs.ReadFile(playersPath)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrReadPlayers, playersPath, err)
	}

	a.logger.Printf("ファイルサイズ: %d バイト (%d レコード分)\n", len(data), len(data)/a.stride())

	// デバッグモードではファイル先頭のバイト列を表示
	if a.config.DebugMode {
		a.dumpHeader(data)
	}

	var records []*carddeck.PlayerRecord
	if a.config.Parallel {
		records = a.decodeParallel(data)
	} else {
		records = carddeck.DecodePlayersWithStride(data, a.stride())
	}

	skipped := len(data)/a.stride() - len(records)

	players := make([]models.Player, len(records))
	for i, record := range records {
		players[i] = toModelPlayer(record)
	}
	return players, skipped, nil
}

// decodeParallel はワーカープールで選手レコードを解読します。
// 出力順は入力オフセット順を保ちます (インデックスで結果をマージ)
func (a *App) decodeParallel(data []byte) []*carddeck.PlayerRecord {
	stride := a.stride()
	numRecords := len(data) / stride
	if numRecords == 0 {
		return nil
	}

	numWorkers := a.config.Workers
	if numWorkers <= 0 {
		numWorkers = 4 // デフォルトのワーカー数
	}
	if numWorkers > numRecords {
		numWorkers = numRecords
	}

	// 各ワーカーは自分のインデックスにだけ書き込むため排他は不要
	results := make([]*carddeck.PlayerRecord, numRecords)
	jobs := make(chan int, numWorkers*2)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				slice := data[index*stride : (index+1)*stride]
				record, err := carddeck.DecodePlayer(slice)
				if err != nil {
					continue // 破損レコードはスキップ
				}
				results[index] = record
			}
		}()
	}

	for index := 0; index < numRecords; index++ {
		jobs <- index
	}
	close(jobs)
	wg.Wait()

	// インデックス順に詰め直す
	var records []*carddeck.PlayerRecord
	for _, record := range results {
		if record != nil {
			records = append(records, record)
		}
	}
	return records
}

// processTables はテーブルディレクトリ内の.TBL/.MSG対をすべて解読します
func (a *App) processTables(ctx context.Context) ([]models.OutcomeTable, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	pairs, err := fileutil.FindTablePairs(a.fs, a.config.TablesDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFindTables, err)
	}
	if len(pairs) == 0 {
		fmt.Fprintf(os.Stderr, "警告: %s に.TBL/.MSG対が見つかりませんでした\n", a.config.TablesDir)
		return nil, nil
	}

	var tables []models.OutcomeTable
	for _, pair := range pairs {
		a.logger.Printf("テーブル %s を解読します...\n", pair.Name)

		tblData, err := a.fs.ReadFile(pair.TBLPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadTable, pair.TBLPath, err)
		}
		msgData, err := a.fs.ReadFile(pair.MSGPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadMessages, pair.MSGPath, err)
		}

		// デバッグモードではメッセージブロブ先頭のCP437デコード結果を表示
		if a.config.DebugMode && a.config.CP437 {
			n := 32
			if len(msgData) < n {
				n = len(msgData)
			}
			if preview, err := fileutil.FromCodePage437(msgData[:n]); err == nil {
				a.logger.Printf("メッセージ先頭 (CP437): %q\n", preview)
			}
		}

		cfg := tableConfigFor(pair.Name)
		cfg.CP437 = a.config.CP437

		entries := outcometab.DecodeTable(tblData, msgData, cfg)

		table := models.OutcomeTable{
			Name:      pair.Name,
			Signature: outcometab.TableSignature(tblData),
			HasBlock:  pair.HasBlock,
			Outcomes:  make([]models.Outcome, 0, len(entries)),
		}
		for _, code := range outcometab.Codes(entries) {
			entry := entries[code]
			table.Outcomes = append(table.Outcomes, models.Outcome{
				Code:    entry.Code,
				Offset:  entry.SourceOffset,
				Message: entry.Message,
			})
		}
		tables = append(tables, table)
	}

	return tables, nil
}

// tableConfigFor はテーブル名から設定を選びます。
// NUMで終わる名前 (B3EHNUM等) は数値テーブル、それ以外はメインテーブル
func tableConfigFor(name string) outcometab.TableConfig {
	if strings.HasSuffix(strings.ToUpper(name), "NUM") {
		return outcometab.NumericTableConfig()
	}
	return outcometab.MainTableConfig()
}

// stride は設定されたレコードストライドを返します
func (a *App) stride() int {
	if a.config.Stride > 0 {
		return a.config.Stride
	}
	return carddeck.RecordStride
}

// dumpHeader はファイル先頭のバイト列を16進表示します
func (a *App) dumpHeader(data []byte) {
	n := 16
	if len(data) < n {
		n = len(data)
	}
	fmt.Printf("ファイルヘッダ (hex): ")
	for i := 0; i < n; i++ {
		fmt.Printf("%02x ", data[i])
	}
	fmt.Println()
}

// toModelPlayer は解読済みレコードをエクスポート用モデルに変換します
func toModelPlayer(record *carddeck.PlayerRecord) models.Player {
	ratings := make([]int, len(record.RatingBytes))
	for i, b := range record.RatingBytes {
		ratings[i] = int(b)
	}
	chart := make([]int, len(record.ChartBytes))
	for i, b := range record.ChartBytes {
		chart[i] = int(b)
	}

	return models.Player{
		LastName:         record.LastName,
		FirstName:        record.FirstName,
		Position:         record.Position,
		Grade:            record.Grade,
		Bats:             record.Bats,
		Throws:           record.Throws,
		CardNumber:       record.CardNumber,
		DescriptorTokens: record.DescriptorTokens,
		RawDescriptor:    record.RawDescriptor,
		RatingBytes:      ratings,
		ChartBytes:       chart,
	}
}
