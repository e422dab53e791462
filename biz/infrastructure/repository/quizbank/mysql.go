package quizbank

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"course-hub/biz/application/dto/course/show"
	"course-hub/biz/infrastructure/util/log"
	"course-hub/biz/infrastructure/util/page"

	_ "github.com/go-sql-driver/mysql"
)

type MySQLMapper struct {
	db *sql.DB
}

// QuizBank 对应数据库中的 QuizBanks 表
type QuizBank struct {
	ID          int     `db:"id"`
	Name        *string `db:"name"`
	Description *string `db:"description"`
	Grade       *int    `db:"grade"`
	Subject     *string `db:"subject"`
}

func NewMySQLMapper(dsn string) (*MySQLMapper, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection: %w", err)
	}

	// 测试连接
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}

	log.Info("MySQL connection established successfully")
	return &MySQLMapper{db: db}, nil
}

func (m *MySQLMapper) Close() error {
	return m.db.Close()
}

// ListQuizBanks 获取题库列表
func (m *MySQLMapper) ListQuizBanks(ctx context.Context, req *show.ListQuizBanksReq) ([]*show.QuizBank, int64, error) {
	// 构建查询条件
	var conditions []string
	var args []interface{}

	// 按年级筛选
	if len(req.Grade) > 0 {
		placeholders := make([]string, len(req.Grade))
		for i, grade := range req.Grade {
			placeholders[i] = "?"
			args = append(args, grade)
		}
		conditions = append(conditions, fmt.Sprintf("grade IN (%s)", strings.Join(placeholders, ",")))
	}

	// 构建 WHERE 子句
	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// 获取总数
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM QuizBanks %s", whereClause)
	var total int64
	err := m.db.QueryRowContext(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		log.Error("Failed to count quiz banks: %v", err)
		return nil, 0, fmt.Errorf("failed to count quiz banks: %w", err)
	}

	// 分页参数
	pageNo, limit := page.ParsePageOpt(req.PaginationOptions)
	offset := (pageNo - 1) * limit

	// 查询数据
	dataQuery := fmt.Sprintf(`
		SELECT id, name, description, grade, subject
		FROM QuizBanks %s
		ORDER BY grade ASC, id ASC
		LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, limit, offset)

	rows, err := m.db.QueryContext(ctx, dataQuery, args...)
	if err != nil {
		log.Error("Failed to query quiz banks: %v", err)
		return nil, 0, fmt.Errorf("failed to query quiz banks: %w", err)
	}
	defer rows.Close()

	var quizBanks []*show.QuizBank
	for rows.Next() {
		var qb QuizBank
		err := rows.Scan(
			&qb.ID,
			&qb.Name,
			&qb.Description,
			&qb.Grade,
			&qb.Subject,
		)
		if err != nil {
			log.Error("Failed to scan quiz bank row: %v", err)
			continue
		}

		quizBanks = append(quizBanks, &show.QuizBank{
			Id:          strconv.Itoa(qb.ID),
			Name:        safeString(qb.Name),
			Description: safeString(qb.Description),
			Grade:       safeInt64(qb.Grade),
			Subject:     safeString(qb.Subject),
		})
	}

	if err = rows.Err(); err != nil {
		log.Error("Error iterating over rows: %v", err)
		return nil, 0, fmt.Errorf("error iterating over rows: %w", err)
	}

	return quizBanks, total, nil
}

// safeString 安全地将 *string 转换为 string
func safeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// safeInt64 安全地将 *int 转换为 int64
func safeInt64(i *int) int64 {
	if i == nil {
		return 0
	}
	return int64(*i)
}
