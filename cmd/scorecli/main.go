package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"sudooom.mahjong.score/internal/mahjong/riichi"
	appErrors "sudooom.mahjong.score/pkg/errors"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "scorecli: %v\n", err)
		os.Exit(appExitCode(err))
	}
}

// run 读取 YAML 请求文件并输出 JSON 结果
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("scorecli", flag.ContinueOnError)
	file := fs.String("f", "", "YAML 请求文件, - 表示标准输入")
	openTanyao := fs.Bool("open-tanyao", true, "允许食断")
	doubleYakuman := fs.Bool("double-yakuman", true, "国士十三面/四暗刻单骑/纯正九莲按双倍役满")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("缺少 -f 参数")
	}

	req, err := readRequest(*file)
	if err != nil {
		return err
	}

	scorer := riichi.NewScorer(riichi.Rules{OpenTanyao: *openTanyao, DoubleYakuman: *doubleYakuman})
	result, err := scorer.Score(req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func readRequest(path string) (*riichi.ScoreRequest, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var req riichi.ScoreRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("解析 %s 失败: %w", path, err)
	}
	return &req, nil
}

// appExitCode 输入错误返回 2, 其他错误返回 1
func appExitCode(err error) int {
	switch appErrors.GetCode(err) {
	case appErrors.CodeInvalidTileCode, appErrors.CodeInvalidRequest:
		return 2
	}
	return 1
}
