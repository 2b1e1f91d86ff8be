package services

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// XMLNode 파싱된 공공데이터 XML 문서의 한 요소.
// 자식 요소는 태그 이름별로 묶이며, 단일 요소라도 항상 슬라이스로
// 보관되므로 단건/다건 응답 형태가 동일하게 다뤄진다.
type XMLNode struct {
	Text     string
	Children map[string][]*XMLNode
}

// ParseXMLTree XML 원문을 XMLNode 트리로 파싱한다. 반환되는 루트는
// 문서 루트 요소를 자식으로 갖는 가상 노드이다.
func ParseXMLTree(data []byte) (*XMLNode, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	root := newXMLNode()

	stack := []*XMLNode{root}
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &UpstreamFormatError{Reason: "XML 파싱 실패: " + err.Error()}
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := newXMLNode()
			parent := stack[len(stack)-1]
			parent.Children[t.Name.Local] = append(parent.Children[t.Name.Local], node)
			stack = append(stack, node)
		case xml.CharData:
			stack[len(stack)-1].Text += string(t)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if len(root.Children) == 0 {
		return nil, &UpstreamFormatError{Reason: "빈 XML 문서"}
	}
	return root, nil
}

func newXMLNode() *XMLNode {
	return &XMLNode{Children: map[string][]*XMLNode{}}
}

// First key에 해당하는 첫 번째 자식 노드를 반환한다. 노드나 자식이
// 없으면 nil을 반환하므로 체이닝 접근이 안전하다.
func (n *XMLNode) First(key string) *XMLNode {
	if n == nil {
		return nil
	}
	children := n.Children[key]
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// All key에 해당하는 자식 노드 전체를 순서대로 반환
func (n *XMLNode) All(key string) []*XMLNode {
	if n == nil {
		return nil
	}
	return n.Children[key]
}

// GetScalar key 자식의 텍스트 값을 공백 제거 후 반환한다.
// 요소가 없거나 비어 있으면 def를 반환한다.
func (n *XMLNode) GetScalar(key, def string) string {
	child := n.First(key)
	if child == nil {
		return def
	}
	value := strings.TrimSpace(child.Text)
	if value == "" {
		return def
	}
	return value
}

// ResponseHeader 공공데이터 응답 헤더의 결과 코드/메시지
type ResponseHeader struct {
	Code    string
	Message string
}

// IsSuccess 결과 코드 "00"은 정상 응답
func (h ResponseHeader) IsSuccess() bool {
	return h.Code == "00"
}

// Header response/header에서 resultCode와 resultMsg를 추출
func Header(root *XMLNode) ResponseHeader {
	header := root.First("response").First("header")
	return ResponseHeader{
		Code:    header.GetScalar("resultCode", ""),
		Message: header.GetScalar("resultMsg", ""),
	}
}

// Items response/body/items 아래의 item 목록을 순서대로 반환한다.
// 단건 응답과 다건 응답 모두 동일한 슬라이스 형태가 된다.
func Items(root *XMLNode) []*XMLNode {
	return root.First("response").First("body").First("items").All("item")
}
