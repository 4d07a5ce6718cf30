package snowflake

import (
	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// SetMachineID 多实例部署时指定机器号
func SetMachineID(id int64) error {
	n, err := snowflake.NewNode(id)
	if err != nil {
		return err
	}
	node = n
	return nil
}

// GenID 生成全局唯一ID
func GenID() uint64 {
	return uint64(node.Generate().Int64())
}
