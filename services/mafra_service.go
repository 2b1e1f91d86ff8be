package services

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/samber/lo"

	"github.com/kyuhunjo/backun-farm-backend/config"
)

const mafraRSSURL = "https://www.mafra.go.kr/bbs/home/792/rssList.do?row=50"

// InterfaceMafraService 농림축산식품부 뉴스 서비스 인터페이스
type InterfaceMafraService interface {
	GetNews() (*NewsFeed, error)
}

// MafraService 농림축산식품부 보도자료 RSS 조회를 처리
type MafraService struct {
	Config *config.Config
	Client *resty.Client
}

// NewMafraService 새 농림축산식품부 뉴스 서비스 생성
func NewMafraService(cfg *config.Config) InterfaceMafraService {
	client := resty.New()
	client.SetTimeout(10 * time.Second)
	client.SetDisableWarn(true)

	return &MafraService{
		Config: cfg,
		Client: client,
	}
}

// NewsItem 뉴스 항목 하나
type NewsItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	PubDate string `json:"pubDate"`
	Author  string `json:"author"`
}

// NewsFeed 채널 메타 정보와 뉴스 목록
type NewsFeed struct {
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Description string     `json:"description"`
	Language    string     `json:"language"`
	Items       []NewsItem `json:"items"`
}

// GetNews RSS 피드를 조회해 뉴스 목록으로 정규화한다
func (s *MafraService) GetNews() (*NewsFeed, error) {
	resp, err := s.Client.R().Get(mafraRSSURL)
	if err != nil {
		return nil, fmt.Errorf("농림축산식품부 뉴스 요청 실패: %w", err)
	}
	return parseNewsFeed(resp.Body())
}

// parseNewsFeed RSS 원문을 뉴스 피드로 정규화한다
func parseNewsFeed(body []byte) (*NewsFeed, error) {
	root, err := ParseXMLTree(body)
	if err != nil {
		return nil, err
	}

	channel := root.First("rss").First("channel")
	if channel == nil {
		return nil, &UpstreamFormatError{Reason: "RSS 채널을 찾을 수 없습니다"}
	}

	items := lo.Map(channel.All("item"), func(item *XMLNode, _ int) NewsItem {
		return NewsItem{
			Title:   item.GetScalar("title", ""),
			Link:    item.GetScalar("link", ""),
			PubDate: item.GetScalar("pubDate", ""),
			Author:  item.GetScalar("author", ""),
		}
	})

	return &NewsFeed{
		Title:       channel.GetScalar("title", ""),
		Link:        channel.GetScalar("link", ""),
		Description: channel.GetScalar("description", ""),
		Language:    channel.GetScalar("language", ""),
		Items:       items,
	}, nil
}
